package redlens_test

import (
	"errors"
	"testing"

	"github.com/redlens/redlens"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := redlens.Errorf(redlens.ENOTFOUND, "post %q not found", "abc123")

	assert.Equal(t, redlens.ENOTFOUND, redlens.ErrorCode(err))
	assert.Equal(t, "post \"abc123\" not found", redlens.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, redlens.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, redlens.EINTERNAL, redlens.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, redlens.ErrorMessage(nil))
}

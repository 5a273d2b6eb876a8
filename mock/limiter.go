package mock

import (
	"context"

	"github.com/redlens/redlens"
)

var _ redlens.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of redlens.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}

package redlib

import (
	"testing"

	"github.com/redlens/redlens"
	"github.com/stretchr/testify/assert"
)

func TestSearchPostsURL(t *testing.T) {
	t.Parallel()

	got := searchPostsURL("https://redlib.example.com/", "SaaS", "saas marketing", redlens.SortTop, redlens.TimeWeek, "")
	assert.Equal(t, "https://redlib.example.com/r/SaaS/search?q=saas+marketing&restrict_sr=on&sort=top&t=week", got)
}

func TestSearchPostsURL_After(t *testing.T) {
	t.Parallel()

	got := searchPostsURL("https://redlib.example.com", "golang", "x", redlens.SortRelevance, redlens.TimeAll, "t3_abc")
	assert.Contains(t, got, "after=t3_abc")
}

func TestListPostsURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://redlib.example.com/r/golang/rising",
		listPostsURL("https://redlib.example.com", "golang", redlens.CategoryRising, ""))
	assert.Equal(t,
		"https://redlib.example.com/r/golang/hot?after=t3_p2",
		listPostsURL("https://redlib.example.com", "golang", redlens.CategoryHot, "t3_p2"))
}

func TestCommentsURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://redlib.example.com/r/golang/comments/abc123",
		commentsURL("https://redlib.example.com", "golang", "abc123"))
}

func TestSearchSubredditsURL(t *testing.T) {
	t.Parallel()

	got := searchSubredditsURL("https://redlib.example.com", "machine learning")
	assert.Equal(t, "https://redlib.example.com/search?q=machine+learning&restrict_sr=&type=sr", got)
}

package mock

import (
	"context"

	"github.com/redlens/redlens"
)

var _ redlens.Archive = (*Archive)(nil)

// Archive is a mock implementation of redlens.Archive.
type Archive struct {
	SavePostsFn      func(ctx context.Context, posts []*redlens.Post) error
	FindPostsFn      func(ctx context.Context, filter redlens.PostFilter) ([]*redlens.Post, error)
	SaveCommentsFn   func(ctx context.Context, postID string, comments []*redlens.Comment) error
	SaveSubredditFn  func(ctx context.Context, sub *redlens.Subreddit) error
	CreateSnapshotFn func(ctx context.Context, snap *redlens.Snapshot, content string) error
}

func (a *Archive) SavePosts(ctx context.Context, posts []*redlens.Post) error {
	return a.SavePostsFn(ctx, posts)
}

func (a *Archive) FindPosts(ctx context.Context, filter redlens.PostFilter) ([]*redlens.Post, error) {
	return a.FindPostsFn(ctx, filter)
}

func (a *Archive) SaveComments(ctx context.Context, postID string, comments []*redlens.Comment) error {
	return a.SaveCommentsFn(ctx, postID, comments)
}

func (a *Archive) SaveSubreddit(ctx context.Context, sub *redlens.Subreddit) error {
	return a.SaveSubredditFn(ctx, sub)
}

func (a *Archive) CreateSnapshot(ctx context.Context, snap *redlens.Snapshot, content string) error {
	return a.CreateSnapshotFn(ctx, snap, content)
}

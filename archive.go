package redlens

import (
	"context"
	"time"
)

// Snapshot records one fetched page: where it came from, when, and a hash
// of its content so repeated fetches of unchanged pages can be detected.
type Snapshot struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "snapshot URL required")
	}
	return nil
}

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID        *string `json:"id"`
	Subreddit *string `json:"subreddit"`
	Author    *string `json:"author"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Archive persists extracted records and page snapshots.
type Archive interface {
	// SavePosts upserts extracted posts, keyed by post ID.
	SavePosts(ctx context.Context, posts []*Post) error

	// FindPosts retrieves archived posts matching the filter,
	// newest first.
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// SaveComments upserts extracted comments for a post.
	SaveComments(ctx context.Context, postID string, comments []*Comment) error

	// SaveSubreddit upserts subreddit metadata, keyed by display name.
	SaveSubreddit(ctx context.Context, sub *Subreddit) error

	// CreateSnapshot records a fetched page. The implementation assigns
	// the ID, hash, and fetch time.
	CreateSnapshot(ctx context.Context, snap *Snapshot, content string) error
}

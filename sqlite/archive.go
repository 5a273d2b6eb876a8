package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/redlens/redlens"
)

// Compile-time interface verification.
var _ redlens.Archive = (*Archive)(nil)

// Archive implements redlens.Archive using SQLite.
type Archive struct {
	db *DB

	// Now returns the current time. Defaults to time.Now when nil.
	Now func() time.Time
}

// NewArchive creates a new Archive.
func NewArchive(db *DB) *Archive {
	return &Archive{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

func (a *Archive) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// SavePosts upserts posts keyed by post ID.
func (a *Archive) SavePosts(ctx context.Context, posts []*redlens.Post) error {
	savedAt := a.now().Format(time.RFC3339)
	for _, post := range posts {
		_, err := a.db.ExecContext(ctx, `
			INSERT OR REPLACE INTO posts (id, subreddit, title, author, selftext, score, num_comments, created_utc, permalink, url, link_flair_text, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, post.ID, post.Subreddit, post.Title, post.Author, post.Selftext, post.Score,
			post.NumComments, post.CreatedUTC, post.Permalink, post.URL, post.LinkFlairText, savedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindPosts retrieves archived posts matching the filter, newest first.
func (a *Archive) FindPosts(ctx context.Context, filter redlens.PostFilter) ([]*redlens.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, subreddit, title, author, selftext, score, num_comments, created_utc, permalink, url, link_flair_text FROM posts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Subreddit != nil {
		query.WriteString(" AND subreddit = ?")
		args = append(args, *filter.Subreddit)
	}
	if filter.Author != nil {
		query.WriteString(" AND author = ?")
		args = append(args, *filter.Author)
	}

	query.WriteString(" ORDER BY created_utc DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := a.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*redlens.Post
	for rows.Next() {
		var post redlens.Post
		if err := rows.Scan(&post.ID, &post.Subreddit, &post.Title, &post.Author, &post.Selftext,
			&post.Score, &post.NumComments, &post.CreatedUTC, &post.Permalink, &post.URL,
			&post.LinkFlairText); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

// SaveComments upserts comments for a post.
func (a *Archive) SaveComments(ctx context.Context, postID string, comments []*redlens.Comment) error {
	savedAt := a.now().Format(time.RFC3339)
	for _, comment := range comments {
		_, err := a.db.ExecContext(ctx, `
			INSERT OR REPLACE INTO comments (id, post_id, author, body, score, created_utc, depth, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, comment.ID, postID, comment.Author, comment.Body, comment.Score,
			comment.CreatedUTC, comment.Depth, savedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// SaveSubreddit upserts subreddit metadata keyed by display name.
func (a *Archive) SaveSubreddit(ctx context.Context, sub *redlens.Subreddit) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO subreddits (display_name, title, description, public_description, subscribers, active_users, over18, subreddit_type, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.DisplayName, sub.Title, sub.Description, sub.PublicDescription, sub.Subscribers,
		sub.ActiveUsers, sub.Over18, sub.SubredditType, a.now().Format(time.RFC3339))
	return err
}

// CreateSnapshot records a fetched page, assigning the ID, content hash,
// and fetch time.
func (a *Archive) CreateSnapshot(ctx context.Context, snap *redlens.Snapshot, content string) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.ContentHash = hashContent(content)
	snap.Bytes = len(content)
	snap.FetchedAt = a.now()

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, url, content_hash, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.URL, snap.ContentHash, snap.Bytes, snap.FetchedAt.Format(time.RFC3339))

	return err
}

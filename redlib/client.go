// Package redlib turns Redlib pages into Reddit API shaped records. It
// builds URLs for the instance's page shapes, fetches them through a
// redlens.Fetcher, and assembles posts, comments, and subreddit metadata
// from the markup with the regex engine in package markup.
package redlib

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/redlens/redlens"
	"github.com/redlens/redlens/bloom"
	"github.com/redlens/redlens/markup"
	"golang.org/x/sync/errgroup"
)

// DefaultLimit caps records per operation when the caller does not set one.
const DefaultLimit = 25

// maxListingPages bounds cursor-following on listing and search pages.
const maxListingPages = 10

// Pagination dedup filter sizing.
const (
	seenExpectedKeys      = 10_000
	seenFalsePositiveRate = 0.01
)

// Client extracts Reddit data from one Redlib instance.
//
// The zero value is not usable: BaseURL and Fetcher are required. Limiter,
// RetryDelays, Concurrency, Now, and NewSeenFilter have working defaults.
// A Client is safe for concurrent use; every call is an independent,
// stateless parse.
type Client struct {
	// BaseURL is the Redlib instance origin, e.g. "https://redlib.example.com".
	BaseURL string

	// Fetcher retrieves pages.
	Fetcher redlens.Fetcher

	// Limiter spaces out requests per host when set.
	Limiter redlens.Limiter

	// RetryDelays configures fetch backoff. Nil means DefaultRetryDelays.
	RetryDelays []time.Duration

	// Concurrency bounds parallel fetches in multi-post operations.
	// Zero or negative means 4.
	Concurrency int

	// Now supplies the clock for relative timestamps. Nil means time.Now.
	Now func() time.Time

	// NewSeenFilter builds the cross-page dedup filter for paginated
	// listings. Nil means a Bloom filter.
	NewSeenFilter func() redlens.SeenFilter
}

// SearchQuery describes a post search.
type SearchQuery struct {
	Subreddit string
	Query     string
	Sort      redlens.PostSort  // defaults to relevance
	Time      redlens.TimeRange // defaults to all
	Limit     int               // defaults to DefaultLimit
}

// SearchPosts searches a subreddit for posts, following the listing
// cursor across pages until the limit is met.
func (c *Client) SearchPosts(ctx context.Context, q SearchQuery) ([]*redlens.Post, error) {
	if q.Subreddit == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit required")
	}
	if q.Sort == "" {
		q.Sort = redlens.SortRelevance
	}
	if !q.Sort.Valid() {
		return nil, redlens.Errorf(redlens.EINVALID, "invalid sort order %q", q.Sort)
	}
	if q.Time == "" {
		q.Time = redlens.TimeAll
	}
	if !q.Time.Valid() {
		return nil, redlens.Errorf(redlens.EINVALID, "invalid time range %q", q.Time)
	}

	return c.collectPosts(ctx, q.Limit, func(after string) string {
		return searchPostsURL(c.BaseURL, q.Subreddit, q.Query, q.Sort, q.Time, after)
	})
}

// ListPosts retrieves posts from a subreddit's listing feed, following the
// cursor across pages until the limit is met.
func (c *Client) ListPosts(ctx context.Context, subreddit string, category redlens.Category, limit int) ([]*redlens.Post, error) {
	if subreddit == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit required")
	}
	if category == "" {
		category = redlens.CategoryHot
	}
	if !category.Valid() {
		return nil, redlens.Errorf(redlens.EINVALID, "invalid category %q", category)
	}

	return c.collectPosts(ctx, limit, func(after string) string {
		return listPostsURL(c.BaseURL, subreddit, category, after)
	})
}

// GetPost retrieves a single post from its comments page.
// Returns ENOTFOUND if the page carries no post block.
func (c *Client) GetPost(ctx context.Context, subreddit, postID string) (*redlens.Post, error) {
	if subreddit == "" || postID == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit and post ID required")
	}

	page, err := c.fetch(ctx, commentsURL(c.BaseURL, subreddit, postID))
	if err != nil {
		return nil, err
	}

	item, ok := markup.FindFirst(page, markup.PostItem)
	if !ok {
		return nil, redlens.Errorf(redlens.ENOTFOUND, "post %q not found in r/%s", postID, subreddit)
	}
	return PostFromNode(item, c.now()), nil
}

// Comments retrieves up to limit comments from a post's comments page.
// All comments carry depth 0: the engine flattens the thread rather than
// deriving nesting from markup.
func (c *Client) Comments(ctx context.Context, subreddit, postID string, limit int) ([]*redlens.Comment, error) {
	if subreddit == "" || postID == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit and post ID required")
	}
	limit = normalizeLimit(limit)

	page, err := c.fetch(ctx, commentsURL(c.BaseURL, subreddit, postID))
	if err != nil {
		return nil, err
	}

	items := markup.FindAll(page, markup.CommentItem)
	comments := make([]*redlens.Comment, 0, min(len(items), limit))
	for _, item := range items {
		if len(comments) >= limit {
			break
		}
		comments = append(comments, CommentFromNode(item, 0, c.now()))
	}
	return comments, nil
}

// CommentBatch holds the comments of one post in a multi-post retrieval.
type CommentBatch struct {
	PostID   string
	Comments []*redlens.Comment
}

// CommentsMany retrieves comments for several posts concurrently. Results
// preserve the order of postIDs. The first fetch error cancels the rest.
func (c *Client) CommentsMany(ctx context.Context, subreddit string, postIDs []string, limit int) ([]CommentBatch, error) {
	if subreddit == "" || len(postIDs) == 0 {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit and post IDs required")
	}

	batches := make([]CommentBatch, len(postIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())

	for i, postID := range postIDs {
		g.Go(func() error {
			comments, err := c.Comments(gctx, subreddit, postID, limit)
			if err != nil {
				return err
			}
			batches[i] = CommentBatch{PostID: postID, Comments: comments}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return batches, nil
}

// GetSubreddit retrieves subreddit metadata from its sidebar.
// Returns ENOTFOUND if the page carries no sidebar name.
func (c *Client) GetSubreddit(ctx context.Context, subreddit string) (*redlens.Subreddit, error) {
	if subreddit == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "subreddit required")
	}

	page, err := c.fetch(ctx, subredditURL(c.BaseURL, subreddit))
	if err != nil {
		return nil, err
	}

	sub := SubredditFromPage(page)
	if sub.DisplayName == "" {
		return nil, redlens.Errorf(redlens.ENOTFOUND, "subreddit r/%s not found", subreddit)
	}
	return sub, nil
}

// GetSubreddits retrieves metadata for several subreddits in order.
func (c *Client) GetSubreddits(ctx context.Context, subreddits []string) ([]*redlens.Subreddit, error) {
	subs := make([]*redlens.Subreddit, 0, len(subreddits))
	for _, name := range subreddits {
		sub, err := c.GetSubreddit(ctx, name)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// SearchSubreddits searches site-wide for subreddits. Result pages list
// posts; the subreddit labels are collected and deduplicated in
// first-seen order, capped at limit.
func (c *Client) SearchSubreddits(ctx context.Context, query string, limit int) ([]*redlens.Subreddit, error) {
	if query == "" {
		return nil, redlens.Errorf(redlens.EINVALID, "query required")
	}

	page, err := c.fetch(ctx, searchSubredditsURL(c.BaseURL, query))
	if err != nil {
		return nil, err
	}
	return subredditNames(page, normalizeLimit(limit)), nil
}

// Trending lists the subreddits currently appearing on /r/popular,
// deduplicated in first-seen order.
func (c *Client) Trending(ctx context.Context) ([]*redlens.Subreddit, error) {
	page, err := c.fetch(ctx, trendingURL(c.BaseURL))
	if err != nil {
		return nil, err
	}
	return subredditNames(page, normalizeLimit(0)), nil
}

// subredditNames extracts deduplicated subreddit records (display name
// only) from a post listing page, in first-seen order.
func subredditNames(page string, limit int) []*redlens.Subreddit {
	seen := make(map[string]bool)
	var subs []*redlens.Subreddit
	for _, item := range markup.FindAll(page, markup.PostItem) {
		if len(subs) >= limit {
			break
		}
		node, ok := item.FindFirst(markup.PostSubreddit)
		if !ok {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(node.Text(), "r/"))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		subs = append(subs, &redlens.Subreddit{DisplayName: name, SubredditType: "public"})
	}
	return subs
}

// collectPosts fetches listing pages built by urlFor, assembling posts
// until the limit is met, the cursor runs out, or maxListingPages is hit.
// Post IDs are deduplicated across pages with the seen filter; Redlib
// occasionally repeats pinned posts on consecutive pages.
func (c *Client) collectPosts(ctx context.Context, limit int, urlFor func(after string) string) ([]*redlens.Post, error) {
	limit = normalizeLimit(limit)
	seen := c.newSeenFilter()

	posts := make([]*redlens.Post, 0, limit)
	after := ""
	for page := 0; page < maxListingPages; page++ {
		html, err := c.fetch(ctx, urlFor(after))
		if err != nil {
			return nil, err
		}

		items := markup.FindAll(html, markup.PostItem)
		if len(items) == 0 {
			break
		}

		added := 0
		lastID := ""
		for _, item := range items {
			post := PostFromNode(item, c.now())
			if post.ID != "" {
				lastID = post.ID
				if seen.Test(post.ID) {
					continue
				}
				seen.Add(post.ID)
			}
			posts = append(posts, post)
			added++
			if len(posts) >= limit {
				return posts, nil
			}
		}

		if added == 0 || lastID == "" {
			break
		}
		after = "t3_" + lastID
	}
	return posts, nil
}

// fetch applies rate limiting and retry around the underlying fetcher.
func (c *Client) fetch(ctx context.Context, rawURL string) (string, error) {
	if c.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", redlens.Errorf(redlens.EINVALID, "invalid URL %q", rawURL)
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return fetchWithRetry(ctx, c.Fetcher, rawURL, delays)
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Client) concurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return 4
}

func (c *Client) newSeenFilter() redlens.SeenFilter {
	if c.NewSeenFilter != nil {
		return c.NewSeenFilter()
	}
	return bloom.NewFilter(seenExpectedKeys, seenFalsePositiveRate)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

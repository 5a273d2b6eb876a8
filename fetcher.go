package redlens

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations hide transport details (auth, headers, timeouts).
type Fetcher interface {
	// Fetch retrieves the HTML document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// Limiter provides per-host rate limiting.
type Limiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// SeenFilter deduplicates string keys across pages of a listing.
// Implementations may be probabilistic: false positives are acceptable
// (a record is skipped), false negatives are not.
type SeenFilter interface {
	// Add marks a key as seen.
	Add(key string)

	// Test returns true if the key might have been seen.
	Test(key string) bool
}

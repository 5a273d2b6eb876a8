// Package http provides an HTTP-based implementation of redlens.Fetcher
// for retrieving server-rendered pages from a Redlib instance.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redlens/redlens"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the scraper to the instance.
const DefaultUserAgent = "redlens/1.0"

// acceptHeader asks for HTML; Redlib serves JSON on some endpoints
// otherwise.
const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements redlens.Fetcher at compile time.
var _ redlens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML from a Redlib instance over plain HTTP. Redlib
// pages are fully server-rendered, so no JavaScript execution is needed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	username  string
	password  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBasicAuth sends credentials with every request, for instances
// behind HTTP basic authentication.
func WithBasicAuth(username, password string) Option {
	return func(f *Fetcher) {
		f.username = username
		f.password = password
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", f.userAgent)
	if f.username != "" {
		req.SetBasicAuth(f.username, f.password)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", redlens.Errorf(redlens.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

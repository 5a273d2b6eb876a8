package main

import (
	"context"
	"fmt"
	"io"

	"github.com/redlens/redlens"
)

// Ensure SnapshotFetcher implements redlens.Fetcher at compile time.
var _ redlens.Fetcher = (*SnapshotFetcher)(nil)

// SnapshotFetcher wraps a Fetcher and records an archive snapshot of every
// page it fetches. A failed snapshot is reported but never fails the
// fetch: the page content is already in hand.
type SnapshotFetcher struct {
	next    redlens.Fetcher
	archive redlens.Archive
	errs    io.Writer
}

// NewSnapshotFetcher creates a new SnapshotFetcher reporting snapshot
// failures to errs.
func NewSnapshotFetcher(next redlens.Fetcher, archive redlens.Archive, errs io.Writer) *SnapshotFetcher {
	return &SnapshotFetcher{next: next, archive: archive, errs: errs}
}

// Fetch delegates to the wrapped fetcher and snapshots the result.
func (f *SnapshotFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	snap := &redlens.Snapshot{URL: url}
	if err := f.archive.CreateSnapshot(ctx, snap, html); err != nil {
		fmt.Fprintf(f.errs, "error snapshotting %s: %s\n", url, redlens.ErrorMessage(err))
	}

	return html, nil
}

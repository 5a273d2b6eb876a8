// Package bloom provides probabilistic key deduplication for paginated
// listings using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/redlens/redlens"
)

var _ redlens.SeenFilter = (*Filter)(nil)

// Filter wraps a Bloom filter for post-ID deduplication across listing
// pages.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected keys
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a key as seen.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if the key might have been seen.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

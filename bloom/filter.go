// Package bloom provides href deduplication using Bloom filters.
//
// During corpus ingestion the same document can be discovered through
// several paths; the filter answers "have we already indexed this href"
// without holding every href in memory.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for href deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records an href in the filter.
func (f *Filter) Add(href string) {
	f.f.AddString(href)
}

// Seen returns true if the href might already be recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(href string) bool {
	return f.f.TestString(href)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

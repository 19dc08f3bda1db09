// Package bloom provides duplicate capture detection using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/tonyzdev/jobparse"
)

// Ensure Filter implements jobparse.ContentSet at compile time.
var _ jobparse.ContentSet = (*Filter)(nil)

// Defaults sized for a single corpus run.
const (
	DefaultExpectedItems     = 10000
	DefaultFalsePositiveRate = 0.001
)

// Filter wraps a Bloom filter keyed by capture content hashes.
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

// NewDefaultFilter creates a filter with the default sizing.
func NewDefaultFilter() *Filter {
	return NewFilter(DefaultExpectedItems, DefaultFalsePositiveRate)
}

// Add records a content key.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Test returns true if the key might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(key string) bool {
	return f.f.TestString(key)
}

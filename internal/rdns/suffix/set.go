// Package suffix holds the public-suffix set the domain extractor scans
// against. The set is built once before the run and is read-only after.
package suffix

import (
	bitsbloom "github.com/bits-and-blooms/bloom/v3"
)

// Set is an exact-membership set of public-suffix labels with a bloom
// pre-filter in front of the map. Most rightmost labels in real rDNS data
// are not suffixes, so a definitive bloom negative skips the map probe.
type Set struct {
	entries map[string]struct{}
	bloom   *bitsbloom.BloomFilter
}

// New builds a Set from the given entries. fpRate is the target bloom
// false-positive rate; values outside (0,1) fall back to 1%.
func New(entries []string, fpRate float64) *Set {
	s := &Set{
		entries: make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		s.entries[e] = struct{}{}
	}
	m, k := size(uint64(len(s.entries)), fpRate)
	s.bloom = bitsbloom.New(uint(m), uint(k))
	for e := range s.entries {
		s.bloom.AddString(e)
	}
	return s
}

// Contains reports whether label is a known public suffix.
// Exact, case-sensitive equality; no normalization. Takes bytes so callers
// scanning a borrowed line buffer never allocate; the string conversion in
// the map probe does not escape.
func (s *Set) Contains(label []byte) bool {
	if !s.bloom.Test(label) {
		return false
	}
	_, ok := s.entries[string(label)]
	return ok
}

// Len returns the number of distinct suffixes in the set.
func (s *Set) Len() int {
	return len(s.entries)
}

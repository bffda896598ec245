package extract

import (
	"bytes"

	"github.com/haukened/rdns-map/internal/rdns/suffix"
)

// ListExtractor finds the registrable domain by scanning labels right to
// left against a suffix set loaded from a reference file.
//
// The multi-label suffixes of the public-suffix list (co.uk, com.au) are
// handled by greedy absorption of single-label entries, so the set stays
// flat and the scan costs one dot search per absorbed label.
type ListExtractor struct {
	set *suffix.Set
}

// NewListExtractor returns an Extractor backed by the given suffix set.
func NewListExtractor(set *suffix.Set) *ListExtractor {
	return &ListExtractor{set: set}
}

// Domain returns the label immediately left of the public-suffix boundary.
//
// frontier marks the left edge of the confirmed suffix chain: everything in
// host[frontier:] has been matched against the set. Each step tests the
// label right of the last dot before frontier; a match absorbs it, a miss
// stops the scan. If frontier never moves the rightmost label is not a
// known suffix and there is no domain.
func (e *ListExtractor) Domain(host []byte) ([]byte, bool) {
	frontier := len(host)

	for {
		idx := bytes.LastIndexByte(host[:frontier], '.')
		if idx < 0 {
			break
		}
		if !e.set.Contains(host[idx+1 : frontier]) {
			break
		}
		frontier = idx
	}

	if frontier == len(host) {
		return nil, false
	}

	// host[frontier:] is the suffix chain; the domain is the label to its left.
	start := 0
	if idx := bytes.LastIndexByte(host[:frontier], '.'); idx >= 0 {
		start = idx + 1
	}
	return host[start:frontier], true
}

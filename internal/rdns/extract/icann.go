package extract

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ICANNExtractor resolves the public-suffix boundary with the compiled
// ICANN table from golang.org/x/net/publicsuffix instead of a reference
// file. Useful for runs where no suffix file is available; semantics can
// differ slightly from the list scan (the table carries wildcard and
// exception rules a flat set cannot express).
type ICANNExtractor struct{}

// NewICANNExtractor returns an Extractor backed by the compiled table.
func NewICANNExtractor() *ICANNExtractor {
	return &ICANNExtractor{}
}

// Domain returns the registrable-domain label, i.e. the eTLD+1 with its
// public suffix stripped. Allocates one string per call; this is the
// convenience path, not the hot one.
func (e *ICANNExtractor) Domain(host []byte) ([]byte, bool) {
	etld1, err := publicsuffix.EffectiveTLDPlusOne(string(host))
	if err != nil {
		return nil, false
	}
	dot := strings.IndexByte(etld1, '.')
	if dot < 0 {
		return nil, false
	}
	return []byte(etld1[:dot]), true
}

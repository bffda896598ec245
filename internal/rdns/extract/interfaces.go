// Package extract locates the registrable domain inside an observed
// hostname using a public-suffix boundary.
package extract

// Extractor computes the registrable-domain label of a hostname.
//
// host is a borrowed slice into the caller's line buffer; the returned
// domain is a subslice of host (or a copy, for caching implementations)
// and must not be retained past the buffer's reuse. ok is false when the
// hostname has no recognized public-suffix boundary.
type Extractor interface {
	Domain(host []byte) (domain []byte, ok bool)
}

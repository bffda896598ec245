// Package record extracts the IP and hostname fields from one raw rDNS
// observation line without deserializing the whole object.
package record

// Span is a half-open byte range [Start, End) into a caller-owned buffer.
type Span struct {
	Start int
	End   int
}

// Slice returns the bytes the span covers. Valid only while buf holds the
// line the span was produced from.
func (s Span) Slice(buf []byte) []byte {
	return buf[s.Start:s.End]
}

// Record locates the `name` (IP string) and `value` (hostname) fields of
// one parsed line. It holds offsets, not bytes: a Record is invalidated as
// soon as the owning line buffer is overwritten by the next read.
type Record struct {
	Name  Span
	Value Span
}

// Decoder is the field-extraction contract shared by the zero-copy scanner
// and the encoding/json fallback: pull the IP string and hostname out of
// one line. The returned slices may point into line and must be consumed
// before the next read reuses the buffer.
type Decoder interface {
	Decode(line []byte) (name, value []byte, ok bool)
}

package pipeline

// LineSource yields input lines one at a time. The returned slice is
// owned by the source and is invalidated by the next ReadLine call;
// io.EOF signals a clean end of stream.
type LineSource interface {
	ReadLine() ([]byte, error)
}

// RejectSink receives verbatim copies of diverted lines.
type RejectSink interface {
	Write(line []byte) error
}

// RecordSink receives the ip,domain rows of the primary output.
type RecordSink interface {
	WriteRecord(ip uint32, domain []byte) error
}

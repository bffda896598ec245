// Package sink owns the two output channels of a run: the CSV data stream
// and the rejects file.
package sink

import (
	"bufio"
	"io"
	"strconv"
)

// CSVSink writes `<uint32>,<domain>` lines. Rows are assembled in a reused
// scratch buffer with strconv.AppendUint, so the per-record cost is one
// buffered write and no allocation.
type CSVSink struct {
	w       *bufio.Writer
	scratch []byte
}

// NewCSV wraps w in a buffered CSV writer.
func NewCSV(w io.Writer) *CSVSink {
	return &CSVSink{
		w:       bufio.NewWriterSize(w, 64<<10),
		scratch: make([]byte, 0, 256),
	}
}

// WriteRecord emits one `ip,domain` row.
func (s *CSVSink) WriteRecord(ip uint32, domain []byte) error {
	b := strconv.AppendUint(s.scratch[:0], uint64(ip), 10)
	b = append(b, ',')
	b = append(b, domain...)
	b = append(b, '\n')
	s.scratch = b
	_, err := s.w.Write(b)
	return err
}

// Flush drains the buffer to the underlying writer.
func (s *CSVSink) Flush() error {
	return s.w.Flush()
}

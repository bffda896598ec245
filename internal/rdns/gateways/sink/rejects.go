package sink

import (
	"bufio"
	"fmt"
	"os"
)

// RejectsSink receives verbatim copies of input lines diverted from the
// pipeline (the `\u`-bearing ones), buffered and flushed on Close.
type RejectsSink struct {
	f *os.File
	w *bufio.Writer
}

// CreateRejects creates (or truncates) the rejects file at path.
func CreateRejects(path string) (*RejectsSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create rejects file: %w", err)
	}
	return &RejectsSink{f: f, w: bufio.NewWriterSize(f, 64<<10)}, nil
}

// Write copies line, byte for byte, to the rejects file.
func (s *RejectsSink) Write(line []byte) error {
	_, err := s.w.Write(line)
	return err
}

// Close flushes and closes the file.
func (s *RejectsSink) Close() error {
	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

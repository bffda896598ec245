// Package source reads newline-delimited records out of a gzip stream,
// reusing one buffer across the whole run.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// GzipLineSource yields one decompressed line at a time. ReadLine returns
// a slice into an internal buffer that is overwritten by the next call;
// callers must finish with a line before reading the next.
type GzipLineSource struct {
	f    *os.File
	gz   *gzip.Reader
	br   *bufio.Reader
	long []byte // spill for lines larger than the bufio window
}

// Open opens a gzip-compressed file for line reading.
func Open(path string) (*GzipLineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("gzip input %s: %w", path, err)
	}
	return &GzipLineSource{
		f:  f,
		gz: gz,
		br: bufio.NewReaderSize(gz, 64<<10),
	}, nil
}

// NewFromReader wraps an already-decompressed stream. Used by tests.
func NewFromReader(r io.Reader) *GzipLineSource {
	return &GzipLineSource{br: bufio.NewReaderSize(r, 64<<10)}
}

// ReadLine returns the next line including its trailing newline, if any.
// io.EOF signals a clean end of stream. The returned slice aliases the
// reader's internal buffer except for oversized lines, which spill into a
// reused side buffer; either way it is only valid until the next call.
func (s *GzipLineSource) ReadLine() ([]byte, error) {
	line, err := s.br.ReadSlice('\n')
	if err == nil {
		return line, nil
	}
	if err == bufio.ErrBufferFull {
		// Line exceeds the window; accumulate the fragments.
		s.long = append(s.long[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = s.br.ReadSlice('\n')
			s.long = append(s.long, line...)
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		if len(s.long) == 0 {
			return nil, io.EOF
		}
		return s.long, nil
	}
	if err == io.EOF && len(line) > 0 {
		// Final line without a newline.
		return line, nil
	}
	return nil, err
}

// Close releases the decompressor and the underlying file.
func (s *GzipLineSource) Close() error {
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			if s.f != nil {
				s.f.Close()
			}
			return err
		}
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}

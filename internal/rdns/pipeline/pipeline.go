// Package pipeline drives one single-threaded pass over the input stream:
// divert unicode-bearing lines, parse the rest, extract the registrable
// domain, encode the IP, and emit CSV rows.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/haukened/rdns-map/internal/rdns/common/clock"
	"github.com/haukened/rdns-map/internal/rdns/common/log"
	"github.com/haukened/rdns-map/internal/rdns/extract"
	"github.com/haukened/rdns-map/internal/rdns/ipv4"
	"github.com/haukened/rdns-map/internal/rdns/record"
)

// unicodeMarker flags lines carrying escaped unicode. Such lines are set
// aside whole; the zero-copy decoder never sees an escape sequence.
var unicodeMarker = []byte(`\u`)

// Stats summarizes one completed run. Lines counts processed (non-diverted)
// lines, matching the upstream tool's accounting.
type Stats struct {
	Lines    uint64
	Rejected uint64
	Emitted  uint64
	Failures uint64
	Elapsed  time.Duration
}

// Options carries the collaborators for a Pipeline.
type Options struct {
	Source     LineSource
	Decoder    record.Decoder
	Extractor  extract.Extractor
	Rejects    RejectSink
	Output     RecordSink
	Logger     log.Logger
	Clock      clock.Clock
	StrictIPv4 bool
}

// Pipeline is the run driver. It owns no goroutines and no shared state;
// every line is fully consumed before the next read invalidates the buffer.
type Pipeline struct {
	source     LineSource
	decoder    record.Decoder
	extractor  extract.Extractor
	rejects    RejectSink
	output     RecordSink
	logger     log.Logger
	clock      clock.Clock
	strictIPv4 bool
}

// New constructs a Pipeline from its options.
func New(opts Options) *Pipeline {
	return &Pipeline{
		source:     opts.Source,
		decoder:    opts.Decoder,
		extractor:  opts.Extractor,
		rejects:    opts.Rejects,
		output:     opts.Output,
		logger:     opts.Logger,
		clock:      opts.Clock,
		strictIPv4: opts.StrictIPv4,
	}
}

// Run processes the stream to completion. I/O errors are fatal and abort
// the run; per-line decode failures are logged and skipped; lines with no
// domain match are dropped silently.
func (p *Pipeline) Run() (Stats, error) {
	var stats Stats
	start := p.clock.Now()

	for {
		line, err := p.source.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("read input: %w", err)
		}

		if bytes.Contains(line, unicodeMarker) {
			if err := p.rejects.Write(line); err != nil {
				return stats, fmt.Errorf("write rejects: %w", err)
			}
			stats.Rejected++
			continue
		}

		stats.Lines++

		name, value, ok := p.decoder.Decode(line)
		if !ok {
			p.logger.Warn(map[string]any{"line": string(line)}, "cannot decode record")
			stats.Failures++
			continue
		}

		domain, ok := p.extractor.Domain(value)
		if !ok {
			continue
		}

		var ip uint32
		if p.strictIPv4 {
			ip, err = ipv4.EncodeStrict(name)
			if err != nil {
				p.logger.Warn(map[string]any{"ip": string(name), "error": err.Error()}, "malformed IPv4 address")
				stats.Failures++
				continue
			}
		} else {
			ip = ipv4.Encode(name)
		}

		if err := p.output.WriteRecord(ip, domain); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}
		stats.Emitted++
	}

	stats.Elapsed = p.clock.Now().Sub(start)
	return stats, nil
}

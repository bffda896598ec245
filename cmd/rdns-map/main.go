package main

import (
	"fmt"
	"io"
	"os"

	"github.com/haukened/rdns-map/internal/rdns/common/clock"
	"github.com/haukened/rdns-map/internal/rdns/common/log"
	"github.com/haukened/rdns-map/internal/rdns/config"
	"github.com/haukened/rdns-map/internal/rdns/extract"
	"github.com/haukened/rdns-map/internal/rdns/gateways/sink"
	"github.com/haukened/rdns-map/internal/rdns/gateways/source"
	"github.com/haukened/rdns-map/internal/rdns/pipeline"
	"github.com/haukened/rdns-map/internal/rdns/record"
	"github.com/haukened/rdns-map/internal/rdns/suffix"
)

const (
	version = "0.1.0-dev"
	appName = "rdns-map"
)

// Application holds the wired pipeline and the resources it borrows.
type Application struct {
	pipeline  *pipeline.Pipeline
	extractor extract.Extractor
	source    *source.GzipLineSource
	rejects   *sink.RejectsSink
	output    *sink.CSVSink
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		fmt.Fprintf(os.Stderr, "usage: %s <suffix-file> <input.gz> <rejects-file>\n", appName)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "%s: logging configuration error: %v\n", appName, err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"version":     version,
		"suffix_file": cfg.SuffixFile,
		"input_file":  cfg.InputFile,
		"rejects":     cfg.RejectsFile,
		"decoder":     cfg.Decoder,
		"extractor":   cfg.Extractor,
		"cache_size":  cfg.CacheSize,
		"strict_ipv4": cfg.StrictIPv4,
	}, "starting run")

	app, err := buildApplication(cfg, os.Stdout)
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "failed to build pipeline")
	}

	stats, err := app.pipeline.Run()
	if err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "run failed")
	}

	if err := app.Close(); err != nil {
		log.Fatal(map[string]any{"error": err.Error()}, "failed to finalize outputs")
	}

	fields := map[string]any{
		"lines":    stats.Lines,
		"rejected": stats.Rejected,
		"emitted":  stats.Emitted,
		"failures": stats.Failures,
		"elapsed":  stats.Elapsed.String(),
	}
	if c, ok := app.extractor.(*extract.Cached); ok {
		hits, misses, evictions := c.Stats()
		fields["cache_hits"] = hits
		fields["cache_misses"] = misses
		fields["cache_evictions"] = evictions
	}
	log.Info(fields, "processed input")
}

// buildApplication wires the configured collaborators into a Pipeline.
// The CSV stream goes to out; diagnostics stay on the global logger.
func buildApplication(cfg *config.AppConfig, out io.Writer) (*Application, error) {
	extractor, err := buildExtractor(cfg)
	if err != nil {
		return nil, err
	}

	var decoder record.Decoder
	switch cfg.Decoder {
	case "std":
		decoder = record.StdDecoder{}
	default:
		decoder = record.Scanner{}
	}

	src, err := source.Open(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	rejects, err := sink.CreateRejects(cfg.RejectsFile)
	if err != nil {
		src.Close()
		return nil, err
	}

	output := sink.NewCSV(out)

	p := pipeline.New(pipeline.Options{
		Source:     src,
		Decoder:    decoder,
		Extractor:  extractor,
		Rejects:    rejects,
		Output:     output,
		Logger:     log.GetLogger(),
		Clock:      clock.RealClock{},
		StrictIPv4: cfg.StrictIPv4,
	})

	return &Application{
		pipeline:  p,
		extractor: extractor,
		source:    src,
		rejects:   rejects,
		output:    output,
	}, nil
}

// buildExtractor picks the domain extractor and its optional memo cache.
func buildExtractor(cfg *config.AppConfig) (extract.Extractor, error) {
	var inner extract.Extractor
	switch cfg.Extractor {
	case "icann":
		inner = extract.NewICANNExtractor()
	default:
		set, err := suffix.Load(cfg.SuffixFile, cfg.BloomFPRate)
		if err != nil {
			return nil, err
		}
		log.Debug(map[string]any{"suffixes": set.Len()}, "suffix set loaded")
		inner = extract.NewListExtractor(set)
	}
	return extract.NewCached(inner, cfg.CacheSize)
}

// Close flushes the CSV stream and closes the rejects file and input.
// Output finalization errors win over input close errors.
func (app *Application) Close() error {
	var firstErr error
	if err := app.output.Flush(); err != nil {
		firstErr = fmt.Errorf("flush output: %w", err)
	}
	if err := app.rejects.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close rejects: %w", err)
	}
	if err := app.source.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close input: %w", err)
	}
	return firstErr
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haukened/rdns-map/internal/rdns/config"
	"github.com/haukened/rdns-map/internal/rdns/extract"
)

func TestBuildApplication_MissingInput(t *testing.T) {
	dir := t.TempDir()
	suffixFile := filepath.Join(dir, "suffixes.dat")
	require.NoError(t, os.WriteFile(suffixFile, []byte("com\n"), 0644))

	cfg := &config.AppConfig{
		SuffixFile:  suffixFile,
		InputFile:   filepath.Join(dir, "missing.gz"),
		RejectsFile: filepath.Join(dir, "rejects.txt"),
		Extractor:   "list",
		Decoder:     "scan",
		BloomFPRate: 0.01,
	}

	var out bytes.Buffer
	_, err := buildApplication(cfg, &out)
	require.Error(t, err)
}

func TestBuildApplication_MissingSuffixFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.AppConfig{
		SuffixFile:  filepath.Join(dir, "missing.dat"),
		InputFile:   filepath.Join(dir, "input.gz"),
		RejectsFile: filepath.Join(dir, "rejects.txt"),
		Extractor:   "list",
		Decoder:     "scan",
		BloomFPRate: 0.01,
	}

	var out bytes.Buffer
	_, err := buildApplication(cfg, &out)
	require.Error(t, err)
}

func TestBuildExtractor_ICANN(t *testing.T) {
	cfg := &config.AppConfig{Extractor: "icann"}
	e, err := buildExtractor(cfg)
	require.NoError(t, err)

	domain, ok := e.Domain([]byte("foo.example.com"))
	require.True(t, ok)
	require.Equal(t, "example", string(domain))
}

func TestBuildExtractor_CacheWrapping(t *testing.T) {
	dir := t.TempDir()
	suffixFile := filepath.Join(dir, "suffixes.dat")
	require.NoError(t, os.WriteFile(suffixFile, []byte("com\n"), 0644))

	cfg := &config.AppConfig{
		SuffixFile:  suffixFile,
		Extractor:   "list",
		CacheSize:   32,
		BloomFPRate: 0.01,
	}
	e, err := buildExtractor(cfg)
	require.NoError(t, err)

	_, isCached := e.(*extract.Cached)
	require.True(t, isCached, "expected a cached extractor when cache_size > 0")
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_ArgsAndDefaults(t *testing.T) {
	cfg, err := Load([]string{"suffixes.dat", "input.json.gz", "rejects.txt"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.SuffixFile != "suffixes.dat" {
		t.Errorf("SuffixFile = %q", cfg.SuffixFile)
	}
	if cfg.InputFile != "input.json.gz" {
		t.Errorf("InputFile = %q", cfg.InputFile)
	}
	if cfg.RejectsFile != "rejects.txt" {
		t.Errorf("RejectsFile = %q", cfg.RejectsFile)
	}

	// Defaults
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.Decoder != "scan" {
		t.Errorf("expected Decoder=scan, got %q", cfg.Decoder)
	}
	if cfg.Extractor != "list" {
		t.Errorf("expected Extractor=list, got %q", cfg.Extractor)
	}
	if cfg.CacheSize != 0 {
		t.Errorf("expected CacheSize=0, got %d", cfg.CacheSize)
	}
	if cfg.BloomFPRate != 0.01 {
		t.Errorf("expected BloomFPRate=0.01, got %v", cfg.BloomFPRate)
	}
	if cfg.StrictIPv4 {
		t.Error("expected StrictIPv4=false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RDNS_ENV", "dev")
	t.Setenv("RDNS_LOG_LEVEL", "debug")
	t.Setenv("RDNS_DECODER", "std")
	t.Setenv("RDNS_STRICT_IPV4", "true")

	cfg, err := Load([]string{"s", "i", "r"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "dev" || cfg.LogLevel != "debug" || cfg.Decoder != "std" || !cfg.StrictIPv4 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoad_ArgsOverrideEnv(t *testing.T) {
	t.Setenv("RDNS_INPUT_FILE", "from-env.gz")

	cfg, err := Load([]string{"s", "from-args.gz", "r"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.InputFile != "from-args.gz" {
		t.Errorf("expected args to win, got %q", cfg.InputFile)
	}
}

func TestLoad_ICANNNeedsNoSuffixFile(t *testing.T) {
	t.Setenv("RDNS_EXTRACTOR", "icann")

	cfg, err := Load([]string{"input.gz", "rejects.txt"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SuffixFile != "" {
		t.Errorf("expected empty SuffixFile, got %q", cfg.SuffixFile)
	}
	if cfg.InputFile != "input.gz" || cfg.RejectsFile != "rejects.txt" {
		t.Errorf("positional args misassigned: %+v", cfg)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdns.yaml")
	content := "log_level: warn\ncache_size: 128\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RDNS_CONFIG", path)

	cfg, err := Load([]string{"s", "i", "r"})
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel=warn from file, got %q", cfg.LogLevel)
	}
	if cfg.CacheSize != 128 {
		t.Errorf("expected CacheSize=128 from file, got %d", cfg.CacheSize)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing paths",
			args: nil,
		},
		{
			name: "bad env value",
			env:  map[string]string{"RDNS_ENV": "staging"},
			args: []string{"s", "i", "r"},
		},
		{
			name: "bad log level",
			env:  map[string]string{"RDNS_LOG_LEVEL": "trace"},
			args: []string{"s", "i", "r"},
		},
		{
			name: "bad decoder",
			env:  map[string]string{"RDNS_DECODER": "simd"},
			args: []string{"s", "i", "r"},
		},
		{
			name: "too many args",
			args: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad_ErrorMentionsValidation(t *testing.T) {
	t.Setenv("RDNS_ENV", "weird")
	_, err := Load([]string{"s", "i", "r"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

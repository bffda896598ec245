package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values for a single pipeline run.
// The three file paths normally arrive as positional CLI arguments;
// everything else comes from RDNS_-prefixed environment variables,
// an optional YAML config file, or defaults.
type AppConfig struct {
	// SuffixFile is the public-suffix reference file, one suffix per line.
	// Unused (and optional) when Extractor is "icann".
	SuffixFile string `koanf:"suffix_file" validate:"required_if=Extractor list"`

	// InputFile is the gzip-compressed NDJSON input.
	InputFile string `koanf:"input_file" validate:"required"`

	// RejectsFile receives verbatim copies of lines containing `\u`.
	RejectsFile string `koanf:"rejects_file" validate:"required"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Decoder selects the record field extractor: "scan" for the zero-copy
	// byte scanner, "std" for the encoding/json fallback.
	Decoder string `koanf:"decoder" validate:"required,oneof=scan std"`

	// Extractor selects the domain extractor: "list" uses the suffix file,
	// "icann" uses the compiled public-suffix table.
	Extractor string `koanf:"extractor" validate:"required,oneof=list icann"`

	// CacheSize bounds the hostname->domain memo cache. 0 disables it.
	CacheSize int `koanf:"cache_size" validate:"gte=0"`

	// BloomFPRate is the target false-positive rate for the suffix-set
	// bloom pre-filter.
	BloomFPRate float64 `koanf:"bloom_fp_rate" validate:"gt=0,lt=1"`

	// StrictIPv4 rejects malformed dotted-decimal addresses instead of
	// emitting whatever the lenient encoder produces.
	StrictIPv4 bool `koanf:"strict_ipv4"`
}

// DEFAULT_APP_CONFIG defines the default settings for a run. Paths have no
// defaults; they must be supplied by args, env, or file.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:         "prod",
	LogLevel:    "info",
	Decoder:     "scan",
	Extractor:   "list",
	CacheSize:   0,
	BloomFPRate: 0.01,
}

// configFileEnv names the env var pointing at an optional YAML config file.
const configFileEnv = "RDNS_CONFIG"

// envLoader loads environment variables with the prefix "RDNS_",
// lowercasing keys and stripping the prefix. Mockable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RDNS_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "RDNS_"))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

// defaultLoader loads default values using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// fileLoader loads the YAML config file named by RDNS_CONFIG, if set.
var fileLoader = func(k *koanf.Koanf) error {
	path := os.Getenv(configFileEnv)
	if path == "" {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}

// Load builds an AppConfig from defaults, the optional config file,
// environment variables, and finally the positional arguments
// <suffix-file> <input-file> <rejects-file>, each layer overriding the
// previous one. Validation runs last.
func Load(args []string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := fileLoader(k); err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	if len(args) > 3 {
		return nil, fmt.Errorf("expected at most 3 arguments, got %d", len(args))
	}
	keys := []string{"suffix_file", "input_file", "rejects_file"}
	if len(args) == 2 && k.String("extractor") == "icann" {
		// No suffix file needed; the two args are input and rejects.
		keys = keys[1:]
	}
	for i, arg := range args {
		if err := k.Set(keys[i], arg); err != nil {
			return nil, fmt.Errorf("error setting %s: %w", keys[i], err)
		}
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

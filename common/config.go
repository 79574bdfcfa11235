// Package common holds what the search programs share: configuration, logging,
// count parsing and report output.
package common

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"NumberChains/search"
)

// ErrInvalidConfig wraps every configuration problem found before a search
// starts.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. CHAINS_MAX=10G.
const EnvPrefix = "CHAINS"

// Config is the program configuration. Range bounds and batch size are
// strings so they can use DecodeLimit suffixes.
type Config struct {
	Min         string       `mapstructure:"min"`
	Max         string       `mapstructure:"max"`
	Batch       string       `mapstructure:"batch"`
	ChainLength int          `mapstructure:"chain_length"`
	Punctuation bool         `mapstructure:"punctuation"`
	StopAtFirst bool         `mapstructure:"stop_at_first"`
	Cache       int          `mapstructure:"cache"`
	Backend     string       `mapstructure:"backend"`
	Workers     int          `mapstructure:"workers"`
	Verbose     bool         `mapstructure:"verbose"`
	Report      ReportConfig `mapstructure:"report"`
}

// ReportConfig says where the final report goes. An empty path means no
// report file.
type ReportConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// SetDefaults installs the defaults: the range and chain length of the known
// first chain of 8 without punctuation.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("min", "0")
	v.SetDefault("max", "113_373_373_374")
	v.SetDefault("batch", "10M")
	v.SetDefault("chain_length", 8)
	v.SetDefault("punctuation", false)
	v.SetDefault("stop_at_first", false)
	v.SetDefault("cache", 100)
	v.SetDefault("backend", string(search.BackendAuto))
	v.SetDefault("workers", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("report.path", "")
	v.SetDefault("report.format", "json")
}

// RegisterFlags adds the search flags to cmd and binds them to v.
func RegisterFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.String("config", "", "YAML config file (default ./chains.yaml if present)")
	flags.String("min", "0", "first candidate; accepts K, M, G, T, P and E as powers of ten")
	flags.String("max", "113_373_373_374", "one past the last candidate")
	flags.String("batch", "10M", "candidates evaluated per batch")
	flags.Int("target", 8, "chain length to search for")
	flags.Bool("punctuation", false, "count spaces, hyphens and commas")
	flags.Bool("stop-at-first", false, "stop after the first batch with a match")
	flags.Int("cache", 100, "matches kept per batch")
	flags.String("backend", string(search.BackendAuto), "auto, parallel or sequential")
	flags.Int("workers", 0, "parallel workers (0 = one per CPU)")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.String("report", "", "write the final result to this file")
	flags.String("report-format", "json", "report format: json or yaml")

	for key, flag := range map[string]string{
		"min":           "min",
		"max":           "max",
		"batch":         "batch",
		"chain_length":  "target",
		"punctuation":   "punctuation",
		"stop_at_first": "stop-at-first",
		"cache":         "cache",
		"backend":       "backend",
		"workers":       "workers",
		"verbose":       "verbose",
		"report.path":   "report",
		"report.format": "report-format",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

// Load reads the config file (if any), the environment and bound flags into a
// Config. A missing default config file is not an error; a missing explicit
// one is.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("chains")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: reading config: %w", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Settings converts the configuration into search settings, decoding the
// range and batch size and checking them.
func (c Config) Settings() (search.Settings, error) {
	minValue, err := DecodeLimit(c.Min)
	if err != nil {
		return search.Settings{}, fmt.Errorf("%w: min: %w", ErrInvalidConfig, err)
	}
	maxValue, err := DecodeLimit(c.Max)
	if err != nil {
		return search.Settings{}, fmt.Errorf("%w: max: %w", ErrInvalidConfig, err)
	}
	if c.ChainLength < 1 || c.ChainLength > math.MaxInt32 {
		return search.Settings{}, fmt.Errorf("%w: chain length %d", ErrInvalidConfig, c.ChainLength)
	}
	batch, err := DecodeLimit(c.Batch)
	if err != nil {
		return search.Settings{}, fmt.Errorf("%w: batch: %w", ErrInvalidConfig, err)
	}
	s := search.Settings{
		Min:         minValue,
		Max:         maxValue,
		BatchSize:   batch,
		Target:      int32(c.ChainLength),
		Punctuation: c.Punctuation,
		StopAtFirst: c.StopAtFirst,
		CacheSize:   c.Cache,
	}
	if err := s.Validate(); err != nil {
		return search.Settings{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s, nil
}

// BackendKind parses the configured backend.
func (c Config) BackendKind() (search.BackendKind, error) {
	kind, err := search.ParseBackend(c.Backend)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return kind, nil
}

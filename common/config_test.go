package common

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"NumberChains/search"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.ChainLength)
	assert.Equal(t, 100, cfg.Cache)
	assert.Equal(t, "json", cfg.Report.Format)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, search.Settings{
		Min:       0,
		Max:       113_373_373_374,
		BatchSize: 10_000_000,
		Target:    8,
		CacheSize: 100,
	}, s)

	kind, err := cfg.BackendKind()
	require.NoError(t, err)
	assert.Equal(t, search.BackendAuto, kind)
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chains.yaml"), []byte(`
min: 1G
max: 2G
chain_length: 7
punctuation: true
report:
  format: yaml
`), 0o644))
	t.Setenv("CHAINS_CACHE", "25")

	v := viper.New()
	cmd := &cobra.Command{Use: "test"}
	RegisterFlags(cmd, v)
	require.NoError(t, cmd.Flags().Parse([]string{"--batch", "1M", "--backend", "sequential", "--stop-at-first"}))

	cfg, err := Load(v, "")
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, search.Settings{
		Min:         1_000_000_000,
		Max:         2_000_000_000,
		BatchSize:   1_000_000,
		Target:      7,
		Punctuation: true,
		StopAtFirst: true,
		CacheSize:   25,
	}, s)
	assert.Equal(t, "yaml", cfg.Report.Format)
	assert.Equal(t, "sequential", cfg.Backend)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_SettingsRejects(t *testing.T) {
	good := Config{Min: "0", Max: "10K", Batch: "1K", ChainLength: 8, Cache: 100}
	_, err := good.Settings()
	require.NoError(t, err)

	for name, mutate := range map[string]func(*Config){
		"min above max":  func(c *Config) { c.Min = "20K" },
		"bad max":        func(c *Config) { c.Max = "lots" },
		"zero batch":     func(c *Config) { c.Batch = "0" },
		"zero cache":     func(c *Config) { c.Cache = 0 },
		"zero target":    func(c *Config) { c.ChainLength = 0 },
		"wide target":    func(c *Config) { c.ChainLength = math.MaxUint32 + 8 },
		"wrapped target": func(c *Config) { c.ChainLength = -math.MaxUint32 + 6 },
	} {
		c := good
		mutate(&c)
		_, err := c.Settings()
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}

	_, err = Config{Backend: "gpu"}.BackendKind()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	report := map[string]any{"best": 124, "found": true}

	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, WriteReport(jsonPath, "json", report))
	txt, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var back map[string]any
	require.NoError(t, json.Unmarshal(txt, &back))
	assert.Equal(t, float64(124), back["best"])

	yamlPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, WriteReport(yamlPath, "YAML", report))
	txt, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	back = nil
	require.NoError(t, yaml.Unmarshal(txt, &back))
	assert.Equal(t, 124, back["best"])

	assert.ErrorIs(t, WriteReport(filepath.Join(dir, "r.xml"), "xml", report), ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1), "debug enabled when verbose")

	logger, err = NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

// chdir changes the working directory for the duration of the test; it
// stands in for testing.T.Chdir, which needs go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

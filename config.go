package strutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the Context options.
//
//	max_sequences = 2000
//	max_lists = 100
//	trace = "warn"
type Config struct {
	MaxSequences  int    `toml:"max_sequences" yaml:"max_sequences"`
	MaxLists      int    `toml:"max_lists" yaml:"max_lists"`
	ChunkSize     int    `toml:"chunk_size" yaml:"chunk_size"`
	RegistryLimit int    `toml:"registry_limit" yaml:"registry_limit"`
	ArenaLimit    int    `toml:"arena_limit" yaml:"arena_limit"`
	Trace         string `toml:"trace" yaml:"trace"`
	PanicOnError  bool   `toml:"panic_on_error" yaml:"panic_on_error"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return Config{
		MaxSequences: DefaultMaxSequences,
		MaxLists:     DefaultMaxLists,
		Trace:        TraceSilent.String(),
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file. Keys missing
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseConfig(content, filepath.Ext(path))
}

// ParseConfig decodes content in the format named by ext.
func ParseConfig(content []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("toml unmarshal: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the numeric fields and the trace level.
func (c Config) Validate() error {
	switch {
	case c.MaxSequences < 0, c.MaxLists < 0:
		return fmt.Errorf("strutils config: negative starting capacity (%d, %d)", c.MaxSequences, c.MaxLists)
	case c.ChunkSize < 0, c.RegistryLimit < 0, c.ArenaLimit < 0:
		return fmt.Errorf("strutils config: negative limit")
	}
	_, err := ParseTraceLevel(c.Trace)
	return err
}

// Options converts c into Context options.
func (c Config) Options() []Option {
	trace, _ := ParseTraceLevel(c.Trace)
	opts := []Option{
		WithCapacity(c.MaxSequences, c.MaxLists),
		WithChunkSize(c.ChunkSize),
		WithRegistryLimit(c.RegistryLimit),
		WithArenaLimit(c.ArenaLimit),
		WithTraceLevel(trace),
	}
	if c.PanicOnError {
		opts = append(opts, WithPanicOnError())
	}
	return opts
}

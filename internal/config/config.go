// Package config loads the operator-editable settings: the protected process
// lists and the refresh interval.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sweeptools/memsweep/internal/guard"
)

var configPath = filepath.Join(os.Getenv("HOME"), ".memsweep", "config.yaml")

// Duration wraps time.Duration for YAML unmarshalling.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a textual duration, accepting empty strings.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Duration = 0
		return nil
	}
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = dur
	return nil
}

// MarshalText renders the duration using time.Duration formatting.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the on-disk configuration. Protected names and PIDs are static
// operator input, never computed.
type Config struct {
	RefreshInterval Duration `yaml:"refresh_interval"`
	ProtectedNames  []string `yaml:"protected_names"`
	ProtectedPIDs   []int32  `yaml:"protected_pids"`
}

// Guard builds the essential-process classifier from the configured lists.
func (c *Config) Guard() *guard.List {
	return guard.New(c.ProtectedPIDs, c.ProtectedNames)
}

// Interval returns the refresh period, falling back to the default when the
// file leaves it unset or nonsensical.
func (c *Config) Interval() time.Duration {
	if c.RefreshInterval.Duration <= 0 {
		return 3 * time.Second
	}
	return c.RefreshInterval.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RefreshInterval: Duration{3 * time.Second},
		ProtectedNames:  append([]string(nil), guard.DefaultNames...),
		ProtectedPIDs:   append([]int32(nil), guard.DefaultPIDs...),
	}
}

// Load reads the config from path, or from the default location when path is
// empty. A missing or unreadable file yields the defaults (and seeds the file
// at the default location so the operator has something to edit); a present
// but malformed file is an error rather than a silent fallback.
func Load(path string) (*Config, error) {
	seed := false
	if path == "" {
		path = configPath
		seed = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cfg := Default()
		if seed {
			_ = Save(cfg, path)
		}
		return cfg, nil
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the directory as needed.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = configPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Path returns the default config file location.
func Path() string {
	return configPath
}

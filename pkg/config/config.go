// Package config loads optional defaults for the key extractor from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gregLibert/mfc-keys/pkg/keyfile"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
}

func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cfg Config
	// A file without a document leaves every default unset.
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.resolvePaths(path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Format) != "" {
		if _, err := keyfile.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("config.format: %w", err)
		}
	}
	return nil
}

// KeyFormat returns the configured format, or false if none is set.
func (c *Config) KeyFormat() (keyfile.Format, bool) {
	if strings.TrimSpace(c.Format) == "" {
		return 0, false
	}
	f, err := keyfile.ParseFormat(c.Format)
	if err != nil {
		return 0, false
	}
	return f, true
}

// resolvePaths makes a relative output_dir relative to the config file.
func (c *Config) resolvePaths(configPath string) {
	if c.OutputDir == "" || filepath.IsAbs(c.OutputDir) {
		return
	}
	c.OutputDir = filepath.Join(filepath.Dir(configPath), c.OutputDir)
}

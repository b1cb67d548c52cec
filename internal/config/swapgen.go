// Package config handles loading and validation of swapgen.yaml.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirap-group/swapgen/internal/errors"
	"github.com/sirap-group/swapgen/internal/fs"
)

// Output formats accepted by Format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the parsed swapgen.yaml.
type Config struct {
	Prompt   bool   `yaml:"prompt"`
	Silent   bool   `yaml:"silent"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// fileConfig mirrors Config with optional fields so that absent keys keep
// their defaults.
type fileConfig struct {
	Prompt   *bool   `yaml:"prompt"`
	Silent   *bool   `yaml:"silent"`
	Format   *string `yaml:"format"`
	LogLevel *string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Prompt:   true,
		Format:   FormatJSON,
		LogLevel: "info",
	}
}

// Load reads swapgen.yaml at path on top of Default.
// A missing file is not an error. Unknown keys and type mismatches return
// E_INVALID_CONFIG. Does NOT perform semantic validation; call Validate.
func Load(filesystem fs.FS, path string) (Config, error) {
	cfg := Default()

	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.EInvalidConfig, "failed to read "+path, err)
	}

	return Parse(data)
}

// Parse decodes swapgen.yaml content on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return cfg, errors.Wrap(errors.EInvalidConfig, "invalid swapgen.yaml", err)
	}

	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.Silent != nil {
		cfg.Silent = *raw.Silent
	}
	if raw.Format != nil {
		cfg.Format = *raw.Format
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	return cfg, nil
}

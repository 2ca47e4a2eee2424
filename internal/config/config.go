// Package config loads tablepager settings: the pager options, logging and
// output preferences. Values are layered as built-in defaults, the user
// config file, the project overlay, TABLEPAGER_* environment variables and
// finally command-line flags (applied by the CLI).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rshade/tablepager/internal/logging"
	"github.com/rshade/tablepager/internal/pager"
)

// Output formats for `render`.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Output modes for `browse`.
const (
	ModeAuto        = "auto"
	ModePlain       = "plain"
	ModeStyled      = "styled"
	ModeInteractive = "interactive"
)

const outputTypeFile = "file"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full tablepager configuration.
type Config struct {
	Pager   pager.Config  `json:"pager"   yaml:"pager"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	Output  OutputConfig  `json:"output"  yaml:"output"`

	configPath string
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `json:"level"          yaml:"level"`
	Format string `json:"format"         yaml:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	// Format is the default `render` output: html, json or yaml.
	Format string `json:"format" yaml:"format"`
	// Mode is the default `browse` mode: auto, plain, styled or interactive.
	Mode string `json:"mode" yaml:"mode"`
}

// DefaultLoggingConfig returns the logging defaults.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info", Format: logging.FormatConsole}
}

// DefaultOutputConfig returns the output defaults.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{Format: FormatHTML, Mode: ModeAuto}
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	return &Config{
		Pager:   pager.DefaultConfig(),
		Logging: DefaultLoggingConfig(),
		Output:  DefaultOutputConfig(),
	}
}

// New returns the defaults overlaid with the user config file when it exists
// and parses. Errors are ignored here; use Load to surface them.
func New() *Config {
	cfg := Default()
	path, err := DefaultConfigPath()
	if err != nil {
		return cfg
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return cfg
	}

	loaded := Default()
	if decodeErr := decodeFile(loaded, path); decodeErr != nil {
		return cfg
	}
	loaded.configPath = path
	return loaded
}

// Path returns the file the configuration was read from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// LoadFile reads path on top of the defaults. Unknown keys are errors.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.configPath = path
	return cfg, nil
}

// decodeFile decodes path onto cfg, so keys absent from the file keep the
// values already in cfg.
func decodeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = decodeBytesStrict(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// decodeBytesStrict decodes YAML into out, rejecting unknown keys. An empty
// document is not an error.
func decodeBytesStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Pager.Validate(); err != nil {
		return fmt.Errorf("%w: pager: %w", ErrInvalidConfig, err)
	}

	if _, err := zerologLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	formats := []string{logging.FormatJSON, logging.FormatConsole, logging.FormatText}
	if !slices.Contains(formats, c.Logging.Format) {
		return fmt.Errorf("%w: logging.format %q (want json, console or text)", ErrInvalidConfig, c.Logging.Format)
	}

	if !slices.Contains([]string{FormatHTML, FormatJSON, FormatYAML}, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (want html, json or yaml)", ErrInvalidConfig, c.Output.Format)
	}
	modes := []string{ModeAuto, ModePlain, ModeStyled, ModeInteractive}
	if !slices.Contains(modes, c.Output.Mode) {
		return fmt.Errorf("%w: output.mode %q (want auto, plain, styled or interactive)", ErrInvalidConfig, c.Output.Mode)
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# tablepager configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

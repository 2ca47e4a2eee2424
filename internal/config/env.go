package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "TABLEPAGER_"

// EnvName derives the environment variable for an option name, e.g.
// "perPage" becomes TABLEPAGER_PER_PAGE.
func EnvName(option string) string {
	return EnvPrefix + strcase.ToScreamingSnake(option)
}

type envBinding struct {
	option string
	apply  func(cfg *Config, value string) error
}

func stringBinding(option string, field func(*Config) *string) envBinding {
	return envBinding{option: option, apply: func(cfg *Config, value string) error {
		*field(cfg) = value
		return nil
	}}
}

func intBinding(option string, field func(*Config) *int) envBinding {
	return envBinding{option: option, apply: func(cfg *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvName(option), err)
		}
		*field(cfg) = n
		return nil
	}}
}

//nolint:gochecknoglobals // Fixed option table.
var envBindings = []envBinding{
	intBinding("perPage", func(c *Config) *int { return &c.Pager.PerPage }),
	intBinding("currentPage", func(c *Config) *int { return &c.Pager.CurrentPage }),
	stringBinding("containerID", func(c *Config) *string { return &c.Pager.ContainerID }),
	stringBinding("containerClass", func(c *Config) *string { return &c.Pager.ContainerClass }),
	stringBinding("firstButtonText", func(c *Config) *string { return &c.Pager.FirstButtonText }),
	stringBinding("previousButtonText", func(c *Config) *string { return &c.Pager.PreviousButtonText }),
	stringBinding("nextButtonText", func(c *Config) *string { return &c.Pager.NextButtonText }),
	stringBinding("lastButtonText", func(c *Config) *string { return &c.Pager.LastButtonText }),
	stringBinding("firstButtonClass", func(c *Config) *string { return &c.Pager.FirstButtonClass }),
	stringBinding("previousButtonClass", func(c *Config) *string { return &c.Pager.PreviousButtonClass }),
	stringBinding("nextButtonClass", func(c *Config) *string { return &c.Pager.NextButtonClass }),
	stringBinding("lastButtonClass", func(c *Config) *string { return &c.Pager.LastButtonClass }),
	stringBinding("logLevel", func(c *Config) *string { return &c.Logging.Level }),
	stringBinding("logFormat", func(c *Config) *string { return &c.Logging.Format }),
	stringBinding("logFile", func(c *Config) *string { return &c.Logging.File }),
	stringBinding("outputFormat", func(c *Config) *string { return &c.Output.Format }),
	stringBinding("outputMode", func(c *Config) *string { return &c.Output.Mode }),
}

// EnvNames lists every recognised environment variable.
func EnvNames() []string {
	names := make([]string, len(envBindings))
	for i, b := range envBindings {
		names[i] = EnvName(b.option)
	}
	return names
}

// ApplyEnvOverrides sets every option whose environment variable is present.
// An empty value counts as unset.
func ApplyEnvOverrides(cfg *Config) error {
	for _, b := range envBindings {
		value, ok := os.LookupEnv(EnvName(b.option))
		if !ok || value == "" {
			continue
		}
		if err := b.apply(cfg, value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

package config

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/rshade/tablepager/internal/logging"
)

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// Path is an explicit config file (--config). It must exist when set.
	Path string
	// ProjectDir is a resolved .tablepager directory; its config.yaml is
	// shallow-merged when present.
	ProjectDir string
	// DotEnv is a .env file loaded before environment overrides.
	DotEnv string
}

// Load builds the configuration from defaults, the user config file, the
// project overlay and the environment, then validates it. Flags are applied
// later by the CLI.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	log := logging.FromContext(ctx)

	cfg := Default()
	path := opts.Path
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	switch err := decodeFile(cfg, path); {
	case err == nil:
		cfg.configPath = path
		log.Debug().Str("component", "config").Str("path", path).Msg("loaded config file")
	case opts.Path == "" && errors.Is(err, fs.ErrNotExist):
		// The user config file is optional.
	default:
		return nil, err
	}

	if opts.ProjectDir != "" {
		overlay := ProjectConfigPath(opts.ProjectDir)
		if _, err := os.Stat(overlay); err == nil {
			if err = ShallowMergeYAML(cfg, overlay); err != nil {
				return nil, err
			}
			log.Debug().Str("component", "config").Str("overlay_path", overlay).Msg("merged project config")
		}
	}

	if opts.DotEnv != "" {
		if err := LoadDotEnv(opts.DotEnv); err != nil {
			return nil, err
		}
	}
	if err := ApplyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

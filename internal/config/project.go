package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/tablepager/internal/logging"
)

// EnvProjectDir overrides project discovery.
const EnvProjectDir = "TABLEPAGER_PROJECT_DIR"

// resolvedProjectDir holds the project directory resolved at command start.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config commands
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .tablepager directory.
// It checks (in order):
//  1. flagValue
//  2. TABLEPAGER_PROJECT_DIR
//  3. walking up from startDir to the first directory holding
//     .tablepager/config.yaml
//
// Returns an absolute path or "" when no project is found. Never creates
// anything.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("start_dir", startDir).
			Msg("failed to resolve start directory for project discovery")
		return ""
	}

	for {
		candidate := filepath.Join(dir, configDirName)
		if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// toAbsProjectDir converts dir to an absolute path and appends ".tablepager"
// unless it already ends with it.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == configDirName {
		return abs
	}

	return filepath.Join(abs, configDirName)
}

// ProjectConfigPath returns the overlay file inside projectDir.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, configFileName)
}

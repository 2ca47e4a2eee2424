package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// gitignoreHeader precedes the patterns tablepager adds to a .gitignore.
const gitignoreHeader = "# tablepager: local logs and env files are not tracked"

// defaultIgnorePatterns keep local state out of a project .tablepager/ directory.
//
//nolint:gochecknoglobals // Read-only list.
var defaultIgnorePatterns = []string{"*.log", ".env"}

// IgnorePatterns returns what `config init` keeps out of version control in
// dir: the defaults plus the configured log file when it lives under dir.
func IgnorePatterns(cfg *Config, dir string) []string {
	patterns := slices.Clone(defaultIgnorePatterns)
	if cfg == nil || cfg.Logging.File == "" {
		return patterns
	}

	rel, err := filepath.Rel(dir, cfg.Logging.File)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return patterns
	}
	return lo.Uniq(append(patterns, filepath.ToSlash(rel)))
}

// EnsureGitignore makes sure dir/.gitignore lists every pattern. Missing
// patterns are appended below a marker comment; existing lines are kept as
// they are. It returns the patterns it added.
func EnsureGitignore(dir string, patterns []string) ([]string, error) {
	path := filepath.Join(dir, ".gitignore")

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .gitignore at %s: %w", path, err)
	}

	missing := lo.Without(lo.Uniq(patterns), gitignoreLines(existing)...)
	if len(missing) == 0 {
		return nil, nil
	}

	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}

	var buf bytes.Buffer
	buf.Write(existing)
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		buf.WriteByte('\n')
	}
	if !bytes.Contains(existing, []byte(gitignoreHeader)) {
		buf.WriteString(gitignoreHeader + "\n")
	}
	for _, p := range missing {
		buf.WriteString(p + "\n")
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(path, buf.Bytes(), 0o644); writeErr != nil {
		return nil, fmt.Errorf("writing .gitignore at %s: %w", path, writeErr)
	}
	return missing, nil
}

// gitignoreLines returns the patterns of a .gitignore, without comments and blanks.
func gitignoreLines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tablepager/internal/config"
	"github.com/rshade/tablepager/internal/pager"
)

// newDefaultTarget returns a Config with non-default values so tests can
// verify that absent overlay keys leave them intact.
func newDefaultTarget() *config.Config {
	cfg := config.Default()
	cfg.Pager.PerPage = 25
	cfg.Pager.NextButtonText = "More"
	cfg.Logging = config.LoggingConfig{Level: "warn", Format: "json"}
	cfg.Output = config.OutputConfig{Format: config.FormatJSON, Mode: config.ModePlain}
	return cfg
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleSectionOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  format: yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, config.FormatYAML, target.Output.Format)
	assert.Equal(t, config.ModeAuto, target.Output.Mode, "replaced section restarts from defaults")
	assert.Equal(t, 25, target.Pager.PerPage, "absent sections are untouched")
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_PagerSectionReplaced(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
pager:
  perPage: 10
  containerID: orders-pager
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 10, target.Pager.PerPage)
	assert.Equal(t, "orders-pager", target.Pager.ContainerID)
	assert.Equal(t, pager.DefaultNextButtonText, target.Pager.NextButtonText,
		"values from the lower layer do not leak into a replaced section")
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newDefaultTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown section", "plugins:\n  x: 1\n", config.ErrUnknownSection},
		{"unknown pager key", "pager:\n  pageSize: 3\n", nil},
		{"malformed", "pager: [\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "unused"))
	})
}

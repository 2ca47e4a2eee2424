package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tablepager/internal/cli"
	"github.com/rshade/tablepager/internal/cli/pagination"
	"github.com/rshade/tablepager/internal/config"
	"github.com/rshade/tablepager/internal/htmldom"
	"github.com/rshade/tablepager/internal/pager"
)

// setupCLITest isolates config, env and global state. It returns the
// config home directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	for _, name := range config.EnvNames() {
		t.Setenv(name, "")
	}
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, "")
	t.Setenv("TABLEPAGER_LOG_LEVEL", "error")
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func ordersHTML(n int) string {
	var b strings.Builder
	b.WriteString(`<html><body><table id="orders"><thead><tr><th>ID</th><th>Name</th></tr></thead><tbody>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "<tr><td>%d</td><td>row-%d</td></tr>", i, i)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func visibleIDs(t *testing.T, out string) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	var ids []string
	doc.Find("#orders tbody tr").Each(func(_ int, row *goquery.Selection) {
		if !htmldom.IsHidden(row) {
			ids = append(ids, row.Find("td").First().Text())
		}
	})
	return ids
}

func TestRender_HTML(t *testing.T) {
	setupCLITest(t)
	in := writeTemp(t, "orders.html", ordersHTML(12))

	stdout, stderr, err := execute(t, "", "render", in, "--selector", "#orders", "--click", "next", "--next-text", "More")
	require.NoError(t, err)

	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, visibleIDs(t, stdout))
	assert.Contains(t, stdout, `data-pager-action="next"`)
	assert.Contains(t, stdout, ">More</button>")
	assert.Contains(t, stdout, "6 to 10 of 12 entries")
	assert.Contains(t, stderr, "Paginated 1 tables (12 rows) across 1 files")
}

func TestRender_Stdin(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := execute(t, ordersHTML(3), "render", "--selector", "table")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(t, stdout))
}

func TestRender_JSONMetadata(t *testing.T) {
	setupCLITest(t)
	in := writeTemp(t, "orders.html", ordersHTML(12))

	stdout, _, err := execute(t, "", "render", in, "--page", "9", "--output", "json", "--per-page", "4")
	require.NoError(t, err)

	var results []struct {
		File   string                      `json:"file"`
		Pagers []pagination.PaginationMeta `json:"pagers"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 1)
	require.Len(t, results[0].Pagers, 1)

	meta := results[0].Pagers[0]
	assert.Equal(t, "#orders", meta.Host)
	assert.Equal(t, 3, meta.CurrentPage, "page beyond the end is clamped")
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, "9 to 12 of 12 entries", meta.Label)
	assert.False(t, meta.HasNext)
}

func TestRender_OutDirYAML(t *testing.T) {
	setupCLITest(t)
	a := writeTemp(t, "a.html", ordersHTML(12))
	b := writeTemp(t, "b.html", ordersHTML(2))
	outDir := filepath.Join(t.TempDir(), "out")

	_, stderr, err := execute(t, "", "render", a, b, "--output", "yaml", "--out-dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Paginated 2 tables (14 rows) across 2 files")

	data, err := os.ReadFile(filepath.Join(outDir, "b.yaml"))
	require.NoError(t, err)

	var res struct {
		Pagers []pagination.PaginationMeta `yaml:"pagers"`
	}
	require.NoError(t, yaml.Unmarshal(data, &res))
	require.Len(t, res.Pagers, 1)
	assert.False(t, res.Pagers[0].ControlsVisible)
	assert.Equal(t, "1 to 2 of 2 entries", res.Pagers[0].Label)
}

func TestRender_OutDirRejectsSameBaseName(t *testing.T) {
	setupCLITest(t)
	first := writeTemp(t, "report.html", ordersHTML(12))
	second := writeTemp(t, "report.html", ordersHTML(3))
	outDir := filepath.Join(t.TempDir(), "out")

	_, stderr, err := execute(t, "", "render", first, second, "--out-dir", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.html")
	assert.NotContains(t, stderr, "Paginated")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written when outputs collide")

	// Without --out-dir both documents go to stdout and may share a name.
	stdout, _, err := execute(t, "", "render", first, second)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, `id="pager"`))
}

func TestRender_ConfigFileAndFlagPrecedence(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("pager:\n  perPage: 3\n  nextButtonText: Onward\n"), 0o600))
	in := writeTemp(t, "orders.html", ordersHTML(12))

	stdout, _, err := execute(t, "", "render", in)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, visibleIDs(t, stdout))
	assert.Contains(t, stdout, ">Onward</button>")

	stdout, _, err = execute(t, "", "render", in, "--per-page", "6")
	require.NoError(t, err)
	assert.Len(t, visibleIDs(t, stdout), 6)
	assert.Contains(t, stdout, ">Onward</button>", "unset flags keep config values")
}

func TestRender_Errors(t *testing.T) {
	in := writeTemp(t, "orders.html", ordersHTML(12))

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{"zero per page", []string{"render", in, "--per-page", "0"}, pager.ErrInvalidConfiguration, ""},
		{"bad page", []string{"render", in, "--page", "0"}, pagination.ErrInvalidPage, ""},
		{"bad click", []string{"render", in, "--click", "next,jump"}, pager.ErrUnknownControl, ""},
		{"bad output", []string{"render", in, "--output", "pdf"}, nil, "unsupported output format"},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.html")}, os.ErrNotExist, ""},
		{"stdin with out dir", []string{"render", "-", "--out-dir", t.TempDir()}, nil, "stdin"},
		{"stdin twice", []string{"render", "-", "-"}, nil, "only once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRender_InvalidConfigFileFails(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("pager:\n  perPage: -2\n"), 0o600))

	_, _, err := execute(t, ordersHTML(3), "render")
	require.ErrorIs(t, err, pager.ErrInvalidConfiguration)
}

func TestBrowse_CSVPlain(t *testing.T) {
	setupCLITest(t)
	in := writeTemp(t, "people.csv", "id,name\n1,Ada\n2,Grace\n3,Linus\n4,Ken\n")

	stdout, _, err := execute(t, "", "browse", "--from", "csv", "--path", in, "--per-page", "2", "--current-page", "2")
	require.NoError(t, err)
	assert.Equal(t, "id\tname\n3\tLinus\n4\tKen\n3 to 4 of 4 entries\n", stdout)
}

func TestBrowse_SortedHTML(t *testing.T) {
	setupCLITest(t)
	in := writeTemp(t, "orders.html", ordersHTML(12))

	stdout, _, err := execute(t, "", "browse", "--from", "html", "--path", in, "--selector", "#orders",
		"--sort", "ID:desc", "--per-page", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ID\tName\n12\trow-12\n11\trow-11\n10\trow-10\n"), stdout)
	assert.True(t, strings.HasSuffix(stdout, "1 to 3 of 12 entries\n"))
}

func TestBrowse_StyledMode(t *testing.T) {
	setupCLITest(t)
	in := writeTemp(t, "people.csv", "id,name\n1,Ada\n")

	stdout, _, err := execute(t, "", "browse", "--path", in, "--mode", "styled")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ada")
	assert.Contains(t, stdout, "1 to 1 of 1 entries")
}

func TestBrowse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown source", []string{"browse", "--from", "xlsx"}, "unknown source kind"},
		{"csv without path", []string{"browse", "--from", "csv"}, "--path"},
		{"sql without table", []string{"browse", "--from", "sql", "--dsn", "postgres://localhost/db"}, "--table"},
		{"unsupported dsn", []string{"browse", "--from", "sql", "--dsn", "sqlite://x.db", "--table", "t"}, "unsupported dsn"},
		{"bad sort", []string{"browse", "--path", "unused.csv", "--sort", "a:b:c"}, ""},
		{"bad mode", []string{"browse", "--path", "unused.csv", "--mode", "fancy"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestConfigInit_Global(t *testing.T) {
	home := setupCLITest(t)

	stdout, _, err := execute(t, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized successfully")

	cfg, err := config.LoadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, pager.DefaultConfig(), cfg.Pager)

	_, _, err = execute(t, "", "config", "init")
	require.ErrorIs(t, err, cli.ErrConfigExists)

	_, _, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Project(t *testing.T) {
	setupCLITest(t)
	projectRoot := t.TempDir()

	stdout, _, err := execute(t, "", "config", "init", "--project-dir", projectRoot)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized at")

	_, err = os.Stat(filepath.Join(projectRoot, ".tablepager", "config.yaml"))
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(projectRoot, ".tablepager", ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "*.log\n")
	assert.Contains(t, string(data), ".env\n")
	assert.Contains(t, stdout, "Added to .gitignore: *.log, .env")
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	good := writeTemp(t, "good.yaml", "pager:\n  perPage: 10\n")
	stdout, _, err := execute(t, "", "config", "validate", "--file", good, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid")
	assert.Contains(t, stdout, "Rows per page: 10")

	bad := writeTemp(t, "bad.yaml", "pager:\n  perPage: 0\n")
	_, _, err = execute(t, "", "config", "validate", "--file", bad)
	require.ErrorIs(t, err, pager.ErrInvalidConfiguration)
}

func TestConfigValidate_BrokenUserConfigIsReported(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("pager:\n  rows: 3\n"), 0o600))

	_, _, err := execute(t, "", "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv("TABLEPAGER_PER_PAGE", "15")

	stdout, _, err := execute(t, "", "config", "show", "--format", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &cfg))
	assert.Equal(t, 15, cfg.Pager.PerPage)

	stdout, _, err = execute(t, "", "config", "show", "--env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TABLEPAGER_PER_PAGE\n")
}

func TestRootCommand(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test")

	root := cli.NewRootCmd("test")
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"render", "browse", "config"})
}

package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/config"
	"github.com/rshade/tablepager/internal/logging"
)

// Persistent flag names.
const (
	flagDebug      = "debug"
	flagConfig     = "config"
	flagProjectDir = "project-dir"
	flagEnvFile    = "env-file"
)

// annotationLenientConfig marks commands that must run even when the
// configuration does not load, such as `config validate`.
const annotationLenientConfig = "tablepager/lenient-config"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the tablepager CLI. It loads
// configuration, wires logging and tracing, and registers the render,
// browse and config commands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "tablepager",
		Short:         "Paginate HTML tables and page through tabular data",
		Long:          "tablepager splits table rows into pages with First/Prev/Next/Last controls, in HTML documents or in the terminal.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	cmd.PersistentFlags().String(flagConfig, "", "config file (default ~/.tablepager/config.yaml)")
	cmd.PersistentFlags().String(flagProjectDir, "", "project directory holding .tablepager/config.yaml")
	cmd.PersistentFlags().String(flagEnvFile, ".env", "dotenv file with TABLEPAGER_* variables")

	cmd.AddCommand(NewRenderCmd(), NewBrowseCmd(), newConfigCmd())
	return cmd
}

// loadConfig resolves the project directory, loads the layered
// configuration and installs it as the global config.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString(flagConfig)
	projectFlag, _ := cmd.Flags().GetString(flagProjectDir)
	envFile, _ := cmd.Flags().GetString(flagEnvFile)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	projectDir := config.ResolveProjectDir(ctx, projectFlag, cwd)
	config.SetResolvedProjectDir(projectDir)

	cfg, err := config.Load(ctx, config.LoadOptions{
		Path:       configPath,
		ProjectDir: projectDir,
		DotEnv:     envFile,
	})
	if err != nil {
		if !isLenient(cmd) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cfg = config.Default()
	}

	config.SetGlobalConfig(cfg)
	return nil
}

func isLenient(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationLenientConfig] == "true" {
			return true
		}
	}
	return false
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationLenientConfig: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}

const rootCmdExample = `  # Paginate every table of a page, 10 rows per page
  tablepager render report.html --selector table --per-page 10

  # Render page 3 of the orders table and print its page metadata
  tablepager render report.html --selector '#orders' --page 3 --output json

  # Click Next twice on every pager, writing results to out/
  tablepager render a.html b.html --selector table --click next,next --out-dir out

  # Browse a CSV file in the terminal
  tablepager browse --from csv --path orders.csv

  # Browse a database table, sorted by total
  tablepager browse --from sql --dsn postgres://localhost/shop --table orders --sort total:desc

  # Write the default configuration
  tablepager config init`

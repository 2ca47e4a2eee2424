package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var (
		file    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Loads the configuration the way every command does (user file, project
overlay, TABLEPAGER_* environment) and reports the first problem found:

- YAML syntax errors and unknown keys
- perPage <= 0 or an invalid container id
- unknown logging level or format
- unknown output format or mode`,
		Example: `  # Validate the effective configuration
  tablepager config validate

  # Validate one file and show the resolved values
  tablepager config validate --file ./config.yaml --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, file, verbose)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "validate this file instead of the configured one")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, file string, verbose bool) error {
	var (
		cfg *config.Config
		err error
	)

	if file != "" {
		cfg, err = config.LoadFile(file)
		if err == nil {
			err = cfg.Validate()
		}
	} else {
		configPath, _ := cmd.Flags().GetString(flagConfig)
		cfg, err = config.Load(cmd.Context(), config.LoadOptions{
			Path:       configPath,
			ProjectDir: config.GetResolvedProjectDir(),
		})
	}
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	source := cfg.Path()
	if source == "" {
		source = "(defaults)"
	}

	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Source: %s\n", source)
	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		cmd.Printf("  Project overlay: %s\n", config.ProjectConfigPath(projectDir))
	}
	cmd.Printf("  Rows per page: %d\n", cfg.Pager.PerPage)
	cmd.Printf("  Initial page: %d\n", cfg.Pager.CurrentPage)
	cmd.Printf("  Container: id=%q class=%q\n", cfg.Pager.ContainerID, cfg.Pager.ContainerClass)
	cmd.Printf("  Buttons: %s | %s | %s | %s\n",
		cfg.Pager.FirstButtonText, cfg.Pager.PreviousButtonText, cfg.Pager.NextButtonText, cfg.Pager.LastButtonText)
	cmd.Printf("  Output format: %s\n", cfg.Output.Format)
	cmd.Printf("  Output mode: %s\n", cfg.Output.Mode)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tablepager/internal/config"
)

// ErrConfigExists is returned by config init when the target file exists
// and --force was not given.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (a .tablepager directory was found or --project-dir was
// given) it writes the project overlay and a .gitignore; otherwise it writes
// the user config file.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project, creates $PROJECT/.tablepager/config.yaml with a .gitignore.
Use --global to write ~/.tablepager/config.yaml even inside a project.`,
		Example: `  # Create project-local configuration
  tablepager config init --project-dir .

  # Create the user configuration
  tablepager config init --global

  # Overwrite an existing configuration
  tablepager config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the user configuration even inside a project")

	return cmd
}

// initProjectConfig writes projectDir/config.yaml and a .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := config.ProjectConfigPath(projectDir)

	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	added, err := config.EnsureGitignore(projectDir, config.IgnorePatterns(config.GetGlobalConfig(), projectDir))
	if err != nil {
		return fmt.Errorf("failed to update .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if len(added) > 0 {
		cmd.Printf("Added to .gitignore: %s\n", strings.Join(added, ", "))
	}

	return nil
}

// initGlobalConfig writes the user configuration file.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	configPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	if err = checkWritable(configPath, force); err != nil {
		return err
	}

	if err = config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}

func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return ErrConfigExists
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tablepager/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration.
func NewConfigShowCmd() *cobra.Command {
	var (
		format  string
		envVars bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  tablepager config show
  tablepager config show --format json
  tablepager config show --env`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envVars {
				for _, name := range config.EnvNames() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			}

			cfg := config.GetGlobalConfig()
			var (
				data []byte
				err  error
			)
			switch format {
			case config.FormatYAML:
				data, err = yaml.Marshal(cfg)
			case config.FormatJSON:
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unsupported format %q (want yaml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatYAML, "yaml or json")
	cmd.Flags().BoolVar(&envVars, "env", false, "list the recognised environment variables instead")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand(app))
	cmd.AddCommand(newConfigSetCommand(app))

	return cmd
}

func newConfigShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := *app.config
			shown.APIKey = config.MaskAPIKey(shown.APIKey)

			return app.render(cmd, shown, func() tableSpec {
				return propertyTable(
					"Config File", orNA(app.viper.ConfigFileUsed()),
					"API Key", shown.APIKey,
					"Base URL", shown.BaseURL,
					"Timeout", shown.Timeout.String(),
					"Output", shown.Output,
					"Log Level", shown.Logging.Level,
					"Cache", string(shown.Cache.Type),
				)
			})
		},
	}
}

func newConfigSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value and save it to the configuration file.

Keys use the file's dotted names, for example output, timeout, logging.level
or cache.type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Set(app.viper, args[0], args[1])
			if err != nil {
				return err
			}

			path, err := config.Save(app.viper, cfg)
			if err != nil {
				return err
			}

			app.config = cfg

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s saved to %s\n",
				color.New(color.FgGreen).Sprint("✓"), args[0], path)

			return nil
		},
	}
}

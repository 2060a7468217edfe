package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/ifpa-client/internal/config"
	"github.com/fivetwenty-io/ifpa-client/internal/constants"
)

// NewLoginCommand creates the login command, which stores an API key.
func NewLoginCommand(app *App) *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an IFPA API key",
		Long:  "Prompt for an IFPA API key and save it to the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := app.readAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = key
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			app.config.APIKey = apiKey

			path, err := config.Save(app.viper, app.config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s API key %s saved to %s\n",
				color.New(color.FgGreen).Sprint("✓"), config.MaskAPIKey(apiKey), path)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted for when omitted)")

	return cmd
}

// readAPIKey prompts without echo on a terminal, or reads a line otherwise.
func (a *App) readAPIKey(cmd *cobra.Command) (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

		key, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(key), nil
	}

	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}

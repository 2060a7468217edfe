package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(app *App, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the IFPA CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			return app.render(cmd, versionInfo, func() tableSpec {
				return propertyTable("Version", version, "Commit", commit, "Built", date)
			})
		},
	}
}

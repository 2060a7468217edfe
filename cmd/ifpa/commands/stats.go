package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewStatsCommand creates the stats command group.
func NewStatsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "IFPA aggregate statistics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "overall",
		Short: "Show overall player and tournament counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(client ifpa.Client) error {
				stats, err := client.Stats().Overall(cmd.Context())
				if err != nil {
					return err
				}

				return app.render(cmd, stats, func() tableSpec {
					return propertyTable(
						"Players", formatInt(stats.OverallPlayerCount),
						"Active Players", formatInt(stats.ActivePlayerCount),
						"Tournaments", formatInt(stats.TournamentCount),
						"Tournaments Last Month", formatInt(stats.TournamentsLastMonth),
						"Tournaments This Year", formatInt(stats.TournamentsThisYear),
						"Tournament Players", formatInt(stats.TournamentPlayerCount),
						"Average Age", strconv.FormatFloat(stats.AverageAge.Float64(), 'f', 1, 64),
					)
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "countries",
		Short: "Show player counts by country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(client ifpa.Client) error {
				countries, err := client.Stats().CountryPlayers().Items(cmd.Context())
				if err != nil {
					return err
				}

				return app.render(cmd, countries, func() tableSpec {
					spec := tableSpec{headers: []string{"Rank", "Country", "Code", "Players"}}

					for _, country := range countries {
						spec.rows = append(spec.rows, []string{
							formatInt(country.StatsRank),
							country.CountryName,
							country.CountryCode,
							formatInt(country.PlayerCount),
						})
					}

					return spec
				})
			})
		},
	})

	return cmd
}

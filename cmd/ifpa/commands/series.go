package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewSeriesCommand creates the series command group.
func NewSeriesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Championship series standings",
	}

	cmd.AddCommand(newSeriesListCommand(app))
	cmd.AddCommand(newSeriesStandingsCommand(app))
	cmd.AddCommand(newSeriesPlayerCardCommand(app))

	return cmd
}

func newSeriesListCommand(app *App) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List championship series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(client ifpa.Client) error {
				series, err := client.Series().List().Items(cmd.Context())
				if err != nil {
					return err
				}

				if activeOnly {
					active := series[:0:0]

					for _, s := range series {
						if s.Active {
							active = append(active, s)
						}
					}

					series = active
				}

				return app.render(cmd, series, func() tableSpec {
					spec := tableSpec{headers: []string{"Code", "Title", "Active", "Years"}}

					for _, s := range series {
						spec.rows = append(spec.rows, []string{
							s.Code,
							s.Title,
							strconv.FormatBool(s.Active),
							orNA(strings.Join(s.Years, ", ")),
						})
					}

					return spec
				})
			})
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active series")

	return cmd
}

func newSeriesStandingsCommand(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "standings SERIES_CODE",
		Short: "Show region standings of a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(client ifpa.Client) error {
				standings, err := client.Series().Standings(cmd.Context(), args[0], year)
				if err != nil {
					return err
				}

				return app.render(cmd, standings, func() tableSpec {
					spec := tableSpec{headers: []string{"Region", "Name", "Players", "Leader", "Prize Fund"}}

					for _, standing := range standings.Standings {
						spec.rows = append(spec.rows, []string{
							standing.RegionCode,
							standing.RegionName,
							formatInt(standing.PlayerCount),
							orNA(standing.LeaderName),
							formatPoints(standing.PrizeFund),
						})
					}

					return spec
				})
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "season year (default current)")

	return cmd
}

func newSeriesPlayerCardCommand(app *App) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "player-card SERIES_CODE PLAYER_ID",
		Short: "Show a player's events in a series region",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := parseID(args[1], constants.ErrInvalidPlayerID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				card, err := client.Series().PlayerCard(cmd.Context(), args[0], playerID, region)
				if err != nil {
					return err
				}

				return app.render(cmd, card, func() tableSpec {
					return resultsTable(card.Events)
				})
			})
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "series region code")

	return cmd
}

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewTournamentsCommand creates the tournaments command group.
func NewTournamentsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournaments",
		Aliases: []string{"tournament", "t"},
		Short:   "Look up IFPA tournaments",
	}

	cmd.AddCommand(newTournamentsGetCommand(app))
	cmd.AddCommand(newTournamentsSearchCommand(app))
	cmd.AddCommand(newTournamentsResultsCommand(app))
	cmd.AddCommand(newTournamentsLeagueCommand(app))

	return cmd
}

func newTournamentsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get TOURNAMENT_ID",
		Short: "Show tournament details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidTournamentID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				tournament, err := client.Tournaments().Get(cmd.Context(), id)
				if err != nil {
					return err
				}

				return app.render(cmd, tournament, func() tableSpec {
					return propertyTable(
						"ID", strconv.Itoa(int(tournament.TournamentID)),
						"Name", tournament.TournamentName,
						"Event", orNA(tournament.EventName),
						"Start Date", orNA(tournament.EventStartDate),
						"End Date", orNA(tournament.EventEndDate),
						"Location", orNA(joinLocation(tournament.City, tournament.StateProv)),
						"Country", orNA(tournament.CountryName),
						"Director", orNA(tournament.DirectorName),
						"Players", formatInt(tournament.PlayerCount),
						"Event Value", formatPoints(tournament.EventValue),
						"Website", orNA(tournament.Website),
					)
				})
			})
		},
	}
}

func newTournamentsSearchCommand(app *App) *cobra.Command {
	var (
		opts      listOptions
		location  locationFlags
		name      string
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "search [NAME]",
		Short: "Search tournaments by name, location and date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				name = args[0]
			}

			start, err := parseDate(startDate)
			if err != nil {
				return err
			}

			end, err := parseDate(endDate)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				query := applyLocation(client.Tournaments().Search(), location)
				query = ifpa.WithDateRange(query, start, end)

				if name != "" {
					query = ifpa.WithName(query, name)
				}

				tournaments, err := collect(cmd.Context(), query, &opts)
				if err != nil {
					return err
				}

				return app.render(cmd, tournaments, func() tableSpec {
					spec := tableSpec{headers: []string{"ID", "Name", "Date", "Location", "Country", "Players"}}

					for _, tournament := range tournaments {
						spec.rows = append(spec.rows, []string{
							strconv.Itoa(int(tournament.TournamentID)),
							tournament.TournamentName,
							orNA(tournament.EventStartDate),
							orNA(joinLocation(tournament.City, tournament.StateProv)),
							orNA(tournament.CountryCode),
							formatInt(tournament.PlayerCount),
						})
					}

					return spec
				})
			})
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "tournament name")
	cmd.Flags().StringVar(&location.city, "city", "", "city")
	cmd.Flags().StringVar(&location.stateProv, "stateprov", "", "state or province")
	cmd.Flags().StringVar(&location.country, "country", "", "country name or code")
	cmd.Flags().StringVar(&startDate, "start-date", "", "earliest event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "latest event date (YYYY-MM-DD)")

	return cmd
}

func newTournamentsResultsCommand(app *App) *cobra.Command {
	var where string

	cmd := &cobra.Command{
		Use:   "results TOURNAMENT_ID",
		Short: "List a tournament's standings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidTournamentID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				filter, err := compileWhere(where)
				if err != nil {
					return err
				}

				results, err := client.Tournaments().Results(id).Items(cmd.Context())
				if err != nil {
					return err
				}

				results, err = filterItems(results, filter)
				if err != nil {
					return err
				}

				return app.render(cmd, results, func() tableSpec {
					spec := tableSpec{headers: []string{"Position", "Player ID", "Player", "Country", "Points"}}

					for _, result := range results {
						spec.rows = append(spec.rows, []string{
							formatInt(result.Position),
							formatInt(result.PlayerID),
							orNA(joinName(result.FirstName, result.LastName)),
							orNA(result.CountryCode),
							formatPoints(result.WPPRPoints),
						})
					}

					return spec
				})
			})
		},
	}

	cmd.Flags().StringVar(&where, "where", "", "filter expression over result fields, e.g. 'position <= 8'")

	return cmd
}

func newTournamentsLeagueCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "league TOURNAMENT_ID",
		Short: "List the sessions of a league",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidTournamentID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				league, err := client.Tournaments().League(cmd.Context(), id)
				if err != nil {
					return err
				}

				return app.render(cmd, league, func() tableSpec {
					spec := tableSpec{headers: []string{"Session Date", "Players"}}

					for _, session := range league.Sessions {
						spec.rows = append(spec.rows, []string{session.SessionDate, formatInt(session.PlayerCount)})
					}

					return spec
				})
			})
		},
	}
}

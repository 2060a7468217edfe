package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewPlayersCommand creates the players command group.
func NewPlayersCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "players",
		Aliases: []string{"player", "p"},
		Short:   "Look up IFPA players",
	}

	cmd.AddCommand(newPlayersGetCommand(app))
	cmd.AddCommand(newPlayersSearchCommand(app))
	cmd.AddCommand(newPlayersResultsCommand(app))
	cmd.AddCommand(newPlayersPvPCommand(app))

	return cmd
}

func newPlayersGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAYER_ID [PLAYER_ID...]",
		Short: "Show player profiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, 0, len(args))

			for _, arg := range args {
				id, err := parseID(arg, constants.ErrInvalidPlayerID)
				if err != nil {
					return err
				}

				ids = append(ids, id)
			}

			return app.withClient(func(client ifpa.Client) error {
				players, err := client.Players().GetMany(cmd.Context(), ids)
				if err != nil {
					return err
				}

				return app.render(cmd, players, func() tableSpec {
					spec := tableSpec{headers: []string{"ID", "Name", "Location", "Country", "WPPR Rank", "WPPR Points"}}

					for _, player := range players {
						rank, points := constants.NotAvailable, constants.NotAvailable

						for _, stat := range player.Stats {
							if stat.System == string(ifpa.RankingSystemMain) || stat.System == "" {
								rank, points = formatInt(stat.CurrentRank), formatPoints(stat.CurrentPoints)

								break
							}
						}

						spec.rows = append(spec.rows, []string{
							strconv.Itoa(int(player.PlayerID)),
							player.Name(),
							orNA(joinLocation(player.City, player.StateProv)),
							orNA(player.CountryCode),
							rank,
							points,
						})
					}

					return spec
				})
			})
		},
	}
}

func newPlayersSearchCommand(app *App) *cobra.Command {
	var (
		opts       listOptions
		location   locationFlags
		name       string
		tournament string
		position   int
	)

	cmd := &cobra.Command{
		Use:   "search [NAME]",
		Short: "Search players by name and location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				name = args[0]
			}

			return app.withClient(func(client ifpa.Client) error {
				query := applyLocation(client.Players().Search(), location)

				if name != "" {
					query = ifpa.WithName(query, name)
				}

				if tournament != "" {
					query = ifpa.WithTournament(query, tournament)
				}

				if position > 0 {
					query = ifpa.WithTournamentPosition(query, position)
				}

				players, err := collect(cmd.Context(), query, &opts)
				if err != nil {
					return err
				}

				return app.render(cmd, players, func() tableSpec {
					spec := tableSpec{headers: []string{"ID", "First Name", "Last Name", "Location", "Country", "WPPR Rank"}}

					for _, player := range players {
						spec.rows = append(spec.rows, []string{
							strconv.Itoa(int(player.PlayerID)),
							player.FirstName,
							player.LastName,
							orNA(joinLocation(player.City, player.StateProv)),
							orNA(player.CountryCode),
							formatInt(player.WPPRRank),
						})
					}

					return spec
				})
			})
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "player name")
	cmd.Flags().StringVar(&location.country, "country", "", "country name or code")
	cmd.Flags().StringVar(&location.stateProv, "stateprov", "", "state or province")
	cmd.Flags().StringVar(&tournament, "tournament", "", "players of a tournament")
	cmd.Flags().IntVar(&position, "tourpos", 0, "finishing position in --tournament")

	return cmd
}

func newPlayersResultsCommand(app *App) *cobra.Command {
	var (
		system     string
		resultType string
	)

	cmd := &cobra.Command{
		Use:   "results PLAYER_ID",
		Short: "List a player's tournament results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidPlayerID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				results, err := client.Players().
					Results(id, ifpa.RankingSystem(system), ifpa.ResultType(resultType)).
					Items(cmd.Context())
				if err != nil {
					return err
				}

				return app.render(cmd, results, func() tableSpec {
					return resultsTable(results)
				})
			})
		},
	}

	cmd.Flags().StringVar(&system, "system", string(ifpa.RankingSystemMain), "ranking system (MAIN, WOMEN, YOUTH, PRO)")
	cmd.Flags().StringVar(&resultType, "type", string(ifpa.ResultTypeActive), "result type (ACTIVE, INACTIVE, NONACTIVE)")

	return cmd
}

func newPlayersPvPCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pvp PLAYER_ID OPPONENT_ID",
		Short: "Compare two players head to head",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := parseID(args[0], constants.ErrInvalidPlayerID)
			if err != nil {
				return err
			}

			opponentID, err := parseID(args[1], constants.ErrInvalidPlayerID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				pvp, err := client.Players().PvP(cmd.Context(), playerID, opponentID)
				if err != nil {
					return err
				}

				return app.render(cmd, pvp, func() tableSpec {
					spec := tableSpec{headers: []string{"Tournament", "Date", args[0], args[1]}}

					for _, record := range pvp.Records {
						spec.rows = append(spec.rows, []string{
							record.TournamentName,
							record.EventDate,
							formatInt(record.Player1Finish),
							formatInt(record.Player2Finish),
						})
					}

					return spec
				})
			})
		},
	}
}

func resultsTable(results []ifpa.TournamentResult) tableSpec {
	spec := tableSpec{headers: []string{"Tournament", "Date", "Player", "Position", "Points"}}

	for _, result := range results {
		player := orNA(joinName(result.FirstName, result.LastName))

		spec.rows = append(spec.rows, []string{
			orNA(result.TournamentName),
			orNA(result.EventDate),
			player,
			formatInt(result.Position),
			formatPoints(result.WPPRPoints),
		})
	}

	return spec
}

func joinLocation(city, stateProv string) string {
	switch {
	case city == "":
		return stateProv
	case stateProv == "":
		return city
	default:
		return city + ", " + stateProv
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewDirectorsCommand creates the directors command group.
func NewDirectorsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "directors",
		Aliases: []string{"director", "d"},
		Short:   "Look up tournament directors",
	}

	cmd.AddCommand(newDirectorsGetCommand(app))
	cmd.AddCommand(newDirectorsSearchCommand(app))

	return cmd
}

func newDirectorsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get DIRECTOR_ID",
		Short: "Show a director",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], constants.ErrInvalidDirectorID)
			if err != nil {
				return err
			}

			return app.withClient(func(client ifpa.Client) error {
				director, err := client.Directors().Get(cmd.Context(), id)
				if err != nil {
					return err
				}

				return app.render(cmd, director, func() tableSpec {
					return propertyTable(
						"ID", strconv.Itoa(int(director.DirectorID)),
						"Name", director.Name,
						"Location", orNA(joinLocation(director.City, director.StateProv)),
						"Country", orNA(director.CountryName),
						"Tournaments", formatInt(director.TournamentCount),
					)
				})
			})
		},
	}
}

func newDirectorsSearchCommand(app *App) *cobra.Command {
	var (
		opts    listOptions
		country string
	)

	cmd := &cobra.Command{
		Use:   "search [NAME]",
		Short: "Search directors by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(func(client ifpa.Client) error {
				query := client.Directors().Search()

				if len(args) == 1 {
					query = ifpa.WithName(query, args[0])
				}

				if country != "" {
					query = ifpa.WithCountry(query, country)
				}

				directors, err := collect(cmd.Context(), query, &opts)
				if err != nil {
					return err
				}

				return app.render(cmd, directors, func() tableSpec {
					spec := tableSpec{headers: []string{"ID", "Name", "Location", "Country", "Tournaments"}}

					for _, director := range directors {
						spec.rows = append(spec.rows, []string{
							strconv.Itoa(int(director.DirectorID)),
							director.Name,
							orNA(joinLocation(director.City, director.StateProv)),
							orNA(director.CountryCode),
							formatInt(director.TournamentCount),
						})
					}

					return spec
				})
			})
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&country, "country", "", "country name or code")

	return cmd
}

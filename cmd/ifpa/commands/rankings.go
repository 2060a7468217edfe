package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ifpa-client/internal/constants"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// NewRankingsCommand creates the rankings command group.
func NewRankingsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rankings TYPE",
		Aliases: []string{"ranking", "r"},
		Short:   "List IFPA rankings",
		Long: `List an IFPA ranking.

Types:
  wppr     World Pinball Player Rankings
  women    women's rankings (--division open|women)
  youth    youth rankings
  pro      pro circuit rankings (--division open|women)
  country  rankings of one country (--country)`,
		Example: `  ifpa rankings wppr --max 25
  ifpa rankings women --division women
  ifpa rankings country --country US --where 'wppr_points > 100'`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"wppr", "women", "youth", "pro", "country"},
	}

	var (
		opts     listOptions
		division string
		country  string
	)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.withClient(func(client ifpa.Client) error {
			query, err := rankingQuery(client.Rankings(), args[0], division, country)
			if err != nil {
				return err
			}

			rankings, err := collect(cmd.Context(), query, &opts)
			if err != nil {
				return err
			}

			return app.render(cmd, rankings, func() tableSpec {
				spec := tableSpec{headers: []string{"Rank", "Player ID", "Player", "Country", "WPPR Points", "Events"}}

				for _, ranking := range rankings {
					spec.rows = append(spec.rows, []string{
						formatInt(ranking.CurrentRank),
						strconv.Itoa(int(ranking.PlayerID)),
						joinName(ranking.FirstName, ranking.LastName),
						orNA(ranking.CountryCode),
						formatPoints(ranking.WPPRPoints),
						formatInt(ranking.EventCount),
					})
				}

				return spec
			})
		})
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&division, "division", "open", "division for women and pro rankings (open, women)")
	cmd.Flags().StringVar(&country, "country", "", "country for country rankings")

	return cmd
}

func rankingQuery(rankings ifpa.RankingsClient, kind, division, country string) (ifpa.RankingsQuery, error) {
	div := ifpa.RankingDivision(strings.ToUpper(division))

	switch strings.ToLower(kind) {
	case "wppr", "main":
		return rankings.WPPR(), nil
	case "women":
		return rankings.Women(div), nil
	case "youth":
		return rankings.Youth(), nil
	case "pro":
		return rankings.Pro(div), nil
	case "country":
		if country == "" {
			return ifpa.RankingsQuery{}, fmt.Errorf("country rankings: %w", ifpa.ErrEmptyIdentifier)
		}

		return rankings.Country(country), nil
	default:
		return ifpa.RankingsQuery{}, fmt.Errorf("%w: %q", constants.ErrUnknownRankingType, kind)
	}
}

package client

import (
	"strings"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// RankingsClient implements ifpa.RankingsClient.
type RankingsClient struct {
	requester ifpa.Requester
}

// NewRankingsClient creates a new rankings client.
func NewRankingsClient(requester ifpa.Requester) *RankingsClient {
	return &RankingsClient{
		requester: requester,
	}
}

func (c *RankingsClient) ranking(name, path string) ifpa.RankingsQuery {
	resource := &ifpa.Resource[ifpa.RankingsResponse, ifpa.Ranking]{
		Name:    name,
		Build:   ifpa.Path(path),
		Extract: ifpa.ExtractKey[ifpa.Ranking]("rankings"),
		Schema:  rankingsSchema,
	}

	return ifpa.NewPagedQuery(c.requester, resource, ifpa.DefaultPaging)
}

// WPPR implements ifpa.RankingsClient.WPPR.
func (c *RankingsClient) WPPR() ifpa.RankingsQuery {
	return c.ranking("wppr_rankings", "/rankings/wppr")
}

// Women implements ifpa.RankingsClient.Women.
func (c *RankingsClient) Women(division ifpa.RankingDivision) ifpa.RankingsQuery {
	return c.ranking("women_rankings", "/rankings/women/"+divisionPath(division))
}

// Youth implements ifpa.RankingsClient.Youth.
func (c *RankingsClient) Youth() ifpa.RankingsQuery {
	return c.ranking("youth_rankings", "/rankings/youth")
}

// Pro implements ifpa.RankingsClient.Pro.
func (c *RankingsClient) Pro(division ifpa.RankingDivision) ifpa.RankingsQuery {
	return c.ranking("pro_rankings", "/rankings/pro/"+divisionPath(division))
}

// Country implements ifpa.RankingsClient.Country.
func (c *RankingsClient) Country(country string) ifpa.RankingsQuery {
	return ifpa.WithCountry(c.ranking("country_rankings", "/rankings/country"), country)
}

func divisionPath(division ifpa.RankingDivision) string {
	if division == "" {
		division = ifpa.RankingDivisionOpen
	}

	return strings.ToLower(string(division))
}

package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// DirectorsClient implements ifpa.DirectorsClient.
type DirectorsClient struct {
	requester ifpa.Requester
}

// NewDirectorsClient creates a new directors client.
func NewDirectorsClient(requester ifpa.Requester) *DirectorsClient {
	return &DirectorsClient{
		requester: requester,
	}
}

var directorSearchResource = &ifpa.Resource[ifpa.DirectorSearchResponse, ifpa.Director]{
	Name:    "director_search",
	Build:   ifpa.Path("/director/search"),
	Extract: ifpa.ExtractKey[ifpa.Director]("directors"),
	Schema:  directorSearchSchema,
}

// Get implements ifpa.DirectorsClient.Get.
func (c *DirectorsClient) Get(ctx context.Context, directorID int) (*ifpa.Director, error) {
	resource := &ifpa.Resource[ifpa.Director, ifpa.Director]{
		Name:  "director",
		Build: ifpa.Path(fmt.Sprintf("/director/%d", directorID)),
	}

	director, err := ifpa.NewQuery(c.requester, resource).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting director: %w", notFound("director", directorID, err))
	}

	if director.DirectorID == 0 {
		return nil, &ifpa.NotFoundError{Resource: "director", ID: strconv.Itoa(directorID)}
	}

	return &director, nil
}

// Search implements ifpa.DirectorsClient.Search.
func (c *DirectorsClient) Search() ifpa.DirectorSearchQuery {
	return ifpa.NewPagedQuery(c.requester, directorSearchResource, ifpa.DefaultPaging)
}

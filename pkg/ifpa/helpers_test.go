package ifpa_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

// Test static errors.
var (
	ErrTestBoom = errors.New("boom")
)

type numbersResponse struct {
	Results []int `json:"results"`
}

type numbersQuery = ifpa.PagedQuery[numbersResponse, int]

var numbersResource = &ifpa.Resource[numbersResponse, int]{
	Name:  "numbers",
	Build: ifpa.Path("/numbers"),
}

// pageRequester serves total sequential integers, honoring count and
// start_pos, and records every request it receives.
type pageRequester struct {
	mu       sync.Mutex
	total    int
	failAt   int
	requests []*ifpa.Request
}

func newPageRequester(total int) *pageRequester {
	return &pageRequester{total: total, failAt: -1}
}

func (r *pageRequester) Request(ctx context.Context, req *ifpa.Request) (json.RawMessage, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	offset, _ := req.Params[ifpa.ParamStartPos].(int)
	count, ok := req.Params[ifpa.ParamCount].(int)

	if !ok {
		count = r.total
	}

	if offset == r.failAt {
		return nil, &ifpa.APIError{Message: "server exploded", StatusCode: 500, RequestURL: "/numbers", Err: ErrTestBoom}
	}

	items := []int{}

	for i := offset; i < offset+count && i < r.total; i++ {
		items = append(items, i)
	}

	return json.Marshal(numbersResponse{Results: items})
}

func (r *pageRequester) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.requests)
}

func (r *pageRequester) offsets() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]int, 0, len(r.requests))
	for _, req := range r.requests {
		offset, _ := req.Params[ifpa.ParamStartPos].(int)
		offsets = append(offsets, offset)
	}

	return offsets
}

func newNumbersQuery(requester ifpa.Requester) numbersQuery {
	return ifpa.NewPagedQuery(requester, numbersResource, ifpa.DefaultPaging)
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

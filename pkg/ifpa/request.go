package ifpa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Request describes one HTTP exchange. It is built fresh for every call.
type Request struct {
	Method string
	Path   string
	Params Params
	Body   any

	// Resource names the endpoint in validation errors and logs.
	Resource string
	// Schema, when set, is checked against Params before sending.
	Schema *ParamSchema
}

// NewRequest returns a GET request for path with a copy of params.
func NewRequest(path string, params Params) *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   path,
		Params: params.Clone(),
	}
}

// NormalizedPath returns Path with exactly one leading slash.
func (r *Request) NormalizedPath() string {
	return "/" + strings.TrimLeft(r.Path, "/")
}

// Requester performs one exchange and returns the response JSON, or an error
// from the taxonomy in this package.
type Requester interface {
	Request(ctx context.Context, req *Request) (json.RawMessage, error)
}

// RequesterFunc adapts a function to Requester.
type RequesterFunc func(ctx context.Context, req *Request) (json.RawMessage, error)

// Request implements Requester.
func (f RequesterFunc) Request(ctx context.Context, req *Request) (json.RawMessage, error) {
	return f(ctx, req)
}

// Resource bundles the three strategies a query needs: how to build the
// request from accumulated params, how to decode the response, and how to
// find the item list inside it.
type Resource[R, T any] struct {
	Name string

	// Build turns params into a request. Required.
	Build func(params Params) *Request
	// Parse decodes the response. Defaults to DecodeJSON[R].
	Parse func(raw json.RawMessage) (R, error)
	// Extract returns the items of a response. Defaults to ExtractResults[T].
	Extract func(raw json.RawMessage) ([]T, error)
	// Schema validates params before sending, when validation is enabled.
	Schema *ParamSchema
}

// Path returns a Build function issuing GET requests to a fixed path.
func Path(path string) func(Params) *Request {
	return func(params Params) *Request {
		return NewRequest(path, params)
	}
}

// DecodeJSON unmarshals raw into a fresh R.
func DecodeJSON[R any](raw json.RawMessage) (R, error) {
	var out R

	err := json.Unmarshal(raw, &out)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	return out, nil
}

package ifpa

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
)

// Builder is the capability shared by Query and PagedQuery: read the
// accumulated params and derive a copy carrying new ones. The filter helpers
// in this package operate on any Builder.
type Builder[B any] interface {
	currentParams() Params
	withParams(params Params) B
}

// Query is an immutable request for one resource. Every filter returns a new
// Query; the receiver is never modified, so a Query can be kept as a base and
// branched freely, including from several goroutines.
type Query[R, T any] struct {
	requester Requester
	resource  *Resource[R, T]
	params    Params
}

// NewQuery returns an empty query for resource.
func NewQuery[R, T any](requester Requester, resource *Resource[R, T]) Query[R, T] {
	return Query[R, T]{
		requester: requester,
		resource:  resource,
		params:    Params{},
	}
}

// Params returns a copy of the accumulated parameters.
func (q Query[R, T]) Params() Params {
	return q.params.Clone()
}

func (q Query[R, T]) currentParams() Params {
	return q.params
}

func (q Query[R, T]) withParams(params Params) Query[R, T] {
	q.params = params

	return q
}

// Request returns the request Get would send.
func (q Query[R, T]) Request() *Request {
	req := q.resource.Build(q.params.Clone())
	req.Resource = q.resource.Name
	req.Schema = q.resource.Schema

	return req
}

// Get executes the query. Errors from the requester are returned unaltered.
func (q Query[R, T]) Get(ctx context.Context) (R, error) {
	_, response, err := q.fetch(ctx)

	return response, err
}

// GetAsync runs Get on its own goroutine.
func (q Query[R, T]) GetAsync(ctx context.Context) *Future[R] {
	return Go(ctx, q.Get)
}

// Items executes the query and returns the items of the response.
func (q Query[R, T]) Items(ctx context.Context) ([]T, error) {
	raw, _, err := q.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return q.extract(raw)
}

func (q Query[R, T]) fetch(ctx context.Context) (json.RawMessage, R, error) {
	var zero R

	raw, err := q.requester.Request(ctx, q.Request())
	if err != nil {
		return nil, zero, err
	}

	parse := q.resource.Parse
	if parse == nil {
		parse = DecodeJSON[R]
	}

	response, err := parse(raw)
	if err != nil {
		return nil, zero, fmt.Errorf("parsing %s response: %w", q.resource.Name, err)
	}

	return raw, response, nil
}

func (q Query[R, T]) extract(raw json.RawMessage) ([]T, error) {
	if q.resource.Extract != nil {
		return q.resource.Extract(raw)
	}

	return ExtractResults[T](raw)
}

// Paging names the parameters a paginable endpoint uses.
type Paging struct {
	SizeKey   string
	OffsetKey string
}

// DefaultPaging is what IFPA collection endpoints accept.
var DefaultPaging = Paging{SizeKey: ParamCount, OffsetKey: ParamStartPos}

// PagedQuery is a Query over an endpoint that supports page size and offset
// parameters. Only PagedQuery can be iterated.
type PagedQuery[R, T any] struct {
	query  Query[R, T]
	paging Paging
}

// NewPagedQuery returns an empty paginable query for resource.
func NewPagedQuery[R, T any](requester Requester, resource *Resource[R, T], paging Paging) PagedQuery[R, T] {
	return PagedQuery[R, T]{
		query:  NewQuery(requester, resource),
		paging: paging,
	}
}

// Params returns a copy of the accumulated parameters.
func (q PagedQuery[R, T]) Params() Params {
	return q.query.Params()
}

func (q PagedQuery[R, T]) currentParams() Params {
	return q.query.params
}

func (q PagedQuery[R, T]) withParams(params Params) PagedQuery[R, T] {
	q.query = q.query.withParams(params)

	return q
}

// Query drops the pagination capability.
func (q PagedQuery[R, T]) Query() Query[R, T] {
	return q.query
}

// WithPageSize sets the page size parameter.
func (q PagedQuery[R, T]) WithPageSize(size int) PagedQuery[R, T] {
	return Set(q, q.paging.SizeKey, size)
}

// WithOffset sets the offset parameter.
func (q PagedQuery[R, T]) WithOffset(offset int) PagedQuery[R, T] {
	return Set(q, q.paging.OffsetKey, offset)
}

// Request returns the request Get would send.
func (q PagedQuery[R, T]) Request() *Request {
	return q.query.Request()
}

// Get executes the query for a single page.
func (q PagedQuery[R, T]) Get(ctx context.Context) (R, error) {
	return q.query.Get(ctx)
}

// GetAsync runs Get on its own goroutine.
func (q PagedQuery[R, T]) GetAsync(ctx context.Context) *Future[R] {
	return q.query.GetAsync(ctx)
}

// Items executes the query and returns the items of a single page.
func (q PagedQuery[R, T]) Items(ctx context.Context) ([]T, error) {
	return q.query.Items(ctx)
}

// Iterate lazily walks every page from offset zero. See Paginate.
func (q PagedQuery[R, T]) Iterate(ctx context.Context, pageSize int) iter.Seq2[T, error] {
	return Paginate[PagedQuery[R, T], T](ctx, q, pageSize)
}

// Iterator returns a pull-style iterator over every page.
func (q PagedQuery[R, T]) Iterator(ctx context.Context, pageSize int) *PaginationIterator[T] {
	return NewPaginationIterator[PagedQuery[R, T], T](ctx, q, pageSize)
}

// StreamPages fetches pages on a separate goroutine. See StreamPages.
func (q PagedQuery[R, T]) StreamPages(ctx context.Context, pageSize int) <-chan PageResult[T] {
	return StreamPages[PagedQuery[R, T], T](ctx, q, pageSize)
}

// All collects every item. See CollectAll.
func (q PagedQuery[R, T]) All(ctx context.Context, opts *PaginationOptions) ([]T, error) {
	return CollectAll[PagedQuery[R, T], T](ctx, q, opts)
}

// AllAsync runs All on its own goroutine.
func (q PagedQuery[R, T]) AllAsync(ctx context.Context, opts *PaginationOptions) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) ([]T, error) {
		return q.All(ctx, opts)
	})
}

var (
	_ Builder[Query[any, any]]              = Query[any, any]{}
	_ Builder[PagedQuery[any, any]]         = PagedQuery[any, any]{}
	_ PageSource[PagedQuery[any, any], any] = PagedQuery[any, any]{}
)

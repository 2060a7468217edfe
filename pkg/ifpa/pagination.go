package ifpa

import (
	"context"
	"errors"
	"fmt"
	"iter"
)

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 50

// ErrNoMoreItems is returned by PaginationIterator.Next after the last item.
var ErrNoMoreItems = errors.New("no more items")

// Paginable is implemented by builders that can set page size and offset.
// The pagination helpers require it at compile time.
type Paginable[B any] interface {
	WithPageSize(size int) B
	WithOffset(offset int) B
}

// PageSource is a Paginable builder that can fetch the items of one page.
type PageSource[B, T any] interface {
	Paginable[B]
	Items(ctx context.Context) ([]T, error)
}

// PaginationOptions controls CollectAll.
type PaginationOptions struct {
	// PageSize per request. Defaults to DefaultPageSize.
	PageSize int
	// MaxResults caps the number of items. Zero means no cap. Exceeding the
	// cap is an error, never a silent truncation.
	MaxResults int
}

// DefaultPaginationOptions returns the defaults used for nil options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{PageSize: DefaultPageSize}
}

// MaxResultsError is returned when CollectAll would exceed MaxResults.
type MaxResultsError struct {
	MaxResults int
}

func (e *MaxResultsError) Error() string {
	return fmt.Sprintf("ifpa: more than %d results available; use Iterate to stop early", e.MaxResults)
}

func (e *MaxResultsError) Unwrap() error { return ErrMaxResultsExceeded }

func (e *MaxResultsError) ifpaError() {}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Offset int
	Items  []T
	Err    error
}

// pages yields each non-empty page starting at offset zero. Each page is
// fetched from a fresh copy of base; the offset advances by pageSize no matter
// how many items arrived. A page shorter than pageSize is the last one.
func pages[B PageSource[B, T], T any](ctx context.Context, base B, pageSize int) iter.Seq2[[]T, error] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(yield func([]T, error) bool) {
		offset := 0

		for {
			items, err := base.WithPageSize(pageSize).WithOffset(offset).Items(ctx)
			if err != nil {
				yield(nil, err)

				return
			}

			if len(items) == 0 {
				return
			}

			if !yield(items, nil) {
				return
			}

			if len(items) < pageSize {
				return
			}

			offset += pageSize
		}
	}
}

// Paginate returns a lazy sequence over every item of every page. Each call
// starts its own traversal at offset zero. The first error ends the sequence.
func Paginate[B PageSource[B, T], T any](ctx context.Context, base B, pageSize int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for page, err := range pages[B, T](ctx, base, pageSize) {
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			for _, item := range page {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// CollectAll consumes Paginate into a slice. If opts.MaxResults is set and
// more items exist, it returns a *MaxResultsError instead of truncating.
func CollectAll[B PageSource[B, T], T any](ctx context.Context, base B, opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	var results []T

	for item, err := range Paginate[B, T](ctx, base, opts.PageSize) {
		if err != nil {
			return nil, err
		}

		if opts.MaxResults > 0 && len(results) >= opts.MaxResults {
			return nil, &MaxResultsError{MaxResults: opts.MaxResults}
		}

		results = append(results, item)
	}

	return results, nil
}

// StreamPages fetches pages on a separate goroutine and delivers them on the
// returned channel, which is closed after the last page, the first error, or
// once ctx is done.
func StreamPages[B PageSource[B, T], T any](ctx context.Context, base B, pageSize int) <-chan PageResult[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		offset := 0

		for page, err := range pages[B, T](ctx, base, pageSize) {
			select {
			case results <- PageResult[T]{Offset: offset, Items: page, Err: err}:
			case <-ctx.Done():
				return
			}

			offset += pageSize
		}
	}()

	return results
}

// PaginationIterator pulls items one at a time.
type PaginationIterator[T any] struct {
	next   func() (T, error, bool)
	stop   func()
	item   T
	err    error
	peeked bool
	done   bool
}

// NewPaginationIterator returns an iterator over every item reachable from base.
func NewPaginationIterator[B PageSource[B, T], T any](ctx context.Context, base B, pageSize int) *PaginationIterator[T] {
	next, stop := iter.Pull2(Paginate[B, T](ctx, base, pageSize))

	return &PaginationIterator[T]{next: next, stop: stop}
}

// HasNext reports whether Next will return an item or an error.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.peeked {
		return true
	}

	if it.done {
		return false
	}

	item, err, ok := it.next()
	if !ok {
		it.Stop()

		return false
	}

	it.item, it.err, it.peeked = item, err, true

	return true
}

// Next returns the next item, ErrNoMoreItems when exhausted, or the error that
// ended the traversal.
func (it *PaginationIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T

		return zero, ErrNoMoreItems
	}

	it.peeked = false

	if it.err != nil {
		it.Stop()
	}

	return it.item, it.err
}

// ForEach calls fn for every remaining item and stops at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(item T) error) error {
	defer it.Stop()

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// All drains the iterator.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	err := it.ForEach(func(item T) error {
		items = append(items, item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Stop releases the iterator. It is safe to call more than once.
func (it *PaginationIterator[T]) Stop() {
	if it.done {
		return
	}

	it.done = true
	it.stop()
}

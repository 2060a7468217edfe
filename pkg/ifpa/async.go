package ifpa

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Future is the result of a call started with Go. The call runs on its own
// goroutine; its only blocking point is the network exchange inside it.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go starts fn and returns a Future for its result. Cancel ctx to cancel the
// call; no ordering is implied between futures started from the same caller.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(future.done)

		future.value, future.err = fn(ctx)
	}()

	return future
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. Abandoning a
// Future through ctx does not cancel the call; cancel the context given to Go.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// AwaitAll waits for every future and returns results in input order. It
// returns on the first error without waiting for the others, which keep
// running until the context given to Go ends.
func AwaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, future := range futures {
		group.Go(func() error {
			value, err := future.Await(groupCtx)
			if err != nil {
				return err
			}

			results[i] = value

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

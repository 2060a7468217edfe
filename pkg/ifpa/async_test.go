package ifpa_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

func TestFuture(t *testing.T) {
	t.Parallel()

	t.Run("await returns the value", func(t *testing.T) {
		t.Parallel()

		future := ifpa.Go(context.Background(), func(ctx context.Context) (int, error) {
			return 42, nil
		})

		value, err := future.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, value)

		<-future.Done()
	})

	t.Run("await returns the error", func(t *testing.T) {
		t.Parallel()

		future := ifpa.Go(context.Background(), func(ctx context.Context) (int, error) {
			return 0, ErrTestBoom
		})

		_, err := future.Await(context.Background())
		assert.ErrorIs(t, err, ErrTestBoom)
	})

	t.Run("await gives up when its context ends", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		defer close(release)

		future := ifpa.Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release

			return 1, nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := future.Await(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cancelling the call context cancels the call", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())

		future := ifpa.Go(ctx, func(ctx context.Context) (int, error) {
			<-ctx.Done()

			return 0, ctx.Err()
		})

		cancel()

		_, err := future.Await(context.Background())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAwaitAll(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 10 * time.Millisecond}
	futures := make([]*ifpa.Future[int], 0, len(delays))

	for i, delay := range delays {
		futures = append(futures, ifpa.Go(context.Background(), func(ctx context.Context) (int, error) {
			time.Sleep(delay)

			return i, nil
		}))
	}

	results, err := ifpa.AwaitAll(context.Background(), futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, results)

	failing := ifpa.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, ErrTestBoom
	})

	_, err = ifpa.AwaitAll(context.Background(), futures[0], failing)
	assert.ErrorIs(t, err, ErrTestBoom)
}

func TestQuery_Async(t *testing.T) {
	t.Parallel()

	requester := newPageRequester(8)
	query := newNumbersQuery(requester)

	page := query.WithPageSize(3).GetAsync(context.Background())
	all := query.AllAsync(context.Background(), &ifpa.PaginationOptions{PageSize: 3})

	response, err := page.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, response.Results)

	items, err := all.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sequence(8), items)
}

func TestRequesterFunc(t *testing.T) {
	t.Parallel()

	var seen *ifpa.Request

	requester := ifpa.RequesterFunc(func(ctx context.Context, req *ifpa.Request) (json.RawMessage, error) {
		seen = req

		return json.RawMessage(`{}`), nil
	})

	_, err := requester.Request(context.Background(), ifpa.NewRequest("player/1", nil))
	require.NoError(t, err)
	assert.Equal(t, "/player/1", seen.NormalizedPath())
}

func TestAwaitAll_ErrorLeavesOthersRunning(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slow := ifpa.Go(ctx, func(ctx context.Context) (int, error) {
		<-ctx.Done()

		return 0, ctx.Err()
	})
	failing := ifpa.Go(ctx, func(ctx context.Context) (int, error) {
		return 0, ErrTestBoom
	})

	_, err := ifpa.AwaitAll(context.Background(), slow, failing)
	require.ErrorIs(t, err, ErrTestBoom)

	select {
	case <-slow.Done():
		t.Fatal("slow future finished before its context was cancelled")
	default:
	}

	cancel()

	_, err = slow.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigrade/submit-api/pkg/async"
)

func TestAsync_Await(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, f.IsComplete())
}

func TestAsync_PreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := async.Async(ctx, struct{}{}, func(ctx context.Context, _ struct{}) (string, error) {
		return "should not run", nil
	})

	got, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()

		slow := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return n, nil
		})
		fast := async.Async(context.Background(), 2, func(ctx context.Context, n int) (int, error) {
			return n, nil
		})

		results, err := async.WaitAll(slow, fast)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, results)
	})

	t.Run("first error wins", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		failing := async.Async(context.Background(), 0, func(ctx context.Context, _ int) (int, error) {
			return 0, boom
		})
		ok := async.Async(context.Background(), 7, func(ctx context.Context, n int) (int, error) {
			return n, nil
		})

		_, err := async.WaitAll(failing, ok)
		assert.ErrorIs(t, err, boom)
	})
}

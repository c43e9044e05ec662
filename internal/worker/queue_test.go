//go:build unit

package worker_test

import (
	"context"
	"testing"
	"time"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id order.ID) order.Task {
	return order.Task{OrderID: id, UserID: uuid.New(), VoucherID: 1, EnqueuedAt: time.Now()}
}

func TestQueue_Enqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("reject policy fails fast when full", func(t *testing.T) {
		q := worker.NewQueue(2, worker.OverflowReject)
		require.NoError(t, q.Enqueue(ctx, newTask(1)))
		require.NoError(t, q.Enqueue(ctx, newTask(2)))

		assert.ErrorIs(t, q.Enqueue(ctx, newTask(3)), commands.ErrQueueFull)
		assert.Equal(t, 2, q.Len())
		assert.Equal(t, 2, q.Cap())
	})

	t.Run("block policy waits for the caller's context", func(t *testing.T) {
		q := worker.NewQueue(1, worker.OverflowBlock)
		require.NoError(t, q.Enqueue(ctx, newTask(1)))

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, q.Enqueue(cctx, newTask(2)), context.DeadlineExceeded)
	})

	t.Run("closed queue refuses new tasks", func(t *testing.T) {
		q := worker.NewQueue(4, worker.OverflowReject)
		q.Close()
		q.Close()

		assert.ErrorIs(t, q.Enqueue(ctx, newTask(1)), commands.ErrQueueClosed)
	})
}

func TestQueue_Requeue(t *testing.T) {
	ctx := context.Background()

	t.Run("an entry already held is not queued again", func(t *testing.T) {
		q := worker.NewQueue(4, worker.OverflowReject)
		task := newTask(1)
		task.LogEntryID = "1-0"
		require.NoError(t, q.Enqueue(ctx, task))
		assert.True(t, q.Holds("1-0"))

		queued, err := q.Requeue(task)
		require.NoError(t, err)
		assert.False(t, queued)
		assert.Equal(t, 1, q.Len())
	})

	t.Run("never blocks, even under the block policy", func(t *testing.T) {
		q := worker.NewQueue(1, worker.OverflowBlock)
		require.NoError(t, q.Enqueue(ctx, newTask(1)))

		task := newTask(2)
		task.LogEntryID = "2-0"
		queued, err := q.Requeue(task)
		assert.ErrorIs(t, err, commands.ErrQueueFull)
		assert.False(t, queued)
		assert.False(t, q.Holds("2-0"), "a refused entry is not held")
	})

	t.Run("a refused enqueue does not hold its entry", func(t *testing.T) {
		q := worker.NewQueue(4, worker.OverflowReject)
		q.Close()
		task := newTask(1)
		task.LogEntryID = "1-0"

		assert.ErrorIs(t, q.Enqueue(ctx, task), commands.ErrQueueClosed)
		assert.False(t, q.Holds("1-0"))
	})
}

func TestNewQueueFromConfig(t *testing.T) {
	t.Run("uses configured capacity", func(t *testing.T) {
		q, err := worker.NewQueueFromConfig(config.NewTestConfig())
		require.NoError(t, err)
		assert.Equal(t, 1024, q.Cap())
	})

	t.Run("rejects unknown overflow policy", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Seckill.QueueOverflow = "drop"
		_, err := worker.NewQueueFromConfig(cfg)
		assert.ErrorIs(t, err, worker.ErrUnknownOverflowPolicy)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Seckill.QueueCapacity = 0
		_, err := worker.NewQueueFromConfig(cfg)
		assert.Error(t, err)
	})
}

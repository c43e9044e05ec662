// Package worker runs the background side of the flash-sale pipeline: the
// bounded order queue, its single consumer and the admission log reconciler.
package worker

import (
	"context"
	"sync"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"
	"seckill-service/internal/usecase/commands"
)

type OverflowPolicy string

const (
	// OverflowBlock makes producers wait for room (or their context).
	OverflowBlock OverflowPolicy = "block"
	// OverflowReject fails the admission with commands.ErrQueueFull.
	OverflowReject OverflowPolicy = "reject"
)

var ErrUnknownOverflowPolicy = errs.New("unknown queue overflow policy")

func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(s); p {
	case OverflowBlock, OverflowReject:
		return p, nil
	default:
		return "", errs.Wrapf(ErrUnknownOverflowPolicy, "%q", s)
	}
}

// Queue is a bounded FIFO of admitted orders. Producers are request handlers;
// the only reader is the Consumer.
type Queue struct {
	tasks  chan *order.Task
	policy OverflowPolicy

	// guards closed and close(tasks) against concurrent sends
	mu     sync.RWMutex
	closed bool

	// log entry ids queued or being persisted by this instance
	heldMu sync.Mutex
	held   map[string]struct{}
}

func NewQueue(capacity int, policy OverflowPolicy) *Queue {
	return &Queue{
		tasks:  make(chan *order.Task, capacity),
		policy: policy,
		held:   make(map[string]struct{}),
	}
}

func NewQueueFromConfig(cfg config.Config) (*Queue, error) {
	policy, err := ParseOverflowPolicy(cfg.Seckill.QueueOverflow)
	if err != nil {
		return nil, err
	}
	if cfg.Seckill.QueueCapacity <= 0 {
		return nil, errs.Newf("invalid SECKILL_QUEUE_CAPACITY %d", cfg.Seckill.QueueCapacity)
	}
	return NewQueue(cfg.Seckill.QueueCapacity, policy), nil
}

func (q *Queue) Enqueue(ctx context.Context, task order.Task) error {
	q.hold(task.LogEntryID)
	if err := q.send(ctx, task, q.policy); err != nil {
		q.release(task.LogEntryID)
		return err
	}
	return nil
}

// Requeue hands a task replayed from the admission log to the consumer without
// blocking. It returns false, and queues nothing, when this instance already
// holds the entry.
func (q *Queue) Requeue(task order.Task) (bool, error) {
	if !q.hold(task.LogEntryID) {
		return false, nil
	}
	if err := q.send(context.Background(), task, OverflowReject); err != nil {
		q.release(task.LogEntryID)
		return false, err
	}
	return true, nil
}

// Holds reports whether the entry is queued or being persisted here.
func (q *Queue) Holds(entryID string) bool {
	q.heldMu.Lock()
	defer q.heldMu.Unlock()
	_, ok := q.held[entryID]
	return ok
}

func (q *Queue) hold(entryID string) bool {
	if entryID == "" {
		return true
	}
	q.heldMu.Lock()
	defer q.heldMu.Unlock()
	if _, ok := q.held[entryID]; ok {
		return false
	}
	q.held[entryID] = struct{}{}
	return true
}

// release is called by the consumer once a task is handled, settled or not.
func (q *Queue) release(entryID string) {
	if entryID == "" {
		return
	}
	q.heldMu.Lock()
	defer q.heldMu.Unlock()
	delete(q.held, entryID)
}

func (q *Queue) send(ctx context.Context, task order.Task, policy OverflowPolicy) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return commands.ErrQueueClosed
	}

	t := task
	switch policy {
	case OverflowBlock:
		select {
		case q.tasks <- &t:
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		select {
		case q.tasks <- &t:
		default:
			return commands.ErrQueueFull
		}
	}
	metrics.QueueDepth.Set(float64(len(q.tasks)))
	return nil
}

// Close stops accepting tasks. Tasks already queued are still delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.tasks)
}

func (q *Queue) Len() int {
	return len(q.tasks)
}

func (q *Queue) Cap() int {
	return cap(q.tasks)
}

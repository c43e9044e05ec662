package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"
	"seckill-service/internal/usecase/commands"
)

// AdmissionLog is the part of the admission log the background workers need.
type AdmissionLog interface {
	Ack(ctx context.Context, entryID string) error
	Pending(ctx context.Context, olderThan time.Duration, limit int64) ([]order.Task, error)
}

const (
	outcomeCreated        = "created"
	outcomeDuplicate      = "duplicate"
	outcomeStockExhausted = "stock_exhausted"
	outcomeInvalid        = "invalid"
	outcomeFailed         = "failed"
	outcomePanic          = "panic"
)

// classifyPersist maps a persist result to a metric outcome and whether the
// admission log entry is settled. Unsettled entries are left for the reconciler.
func classifyPersist(err error) (string, bool) {
	switch {
	case err == nil:
		return outcomeCreated, true
	case errs.Is(err, commands.ErrDuplicateOrder):
		return outcomeDuplicate, true
	case errs.Is(err, commands.ErrStockExhausted):
		return outcomeStockExhausted, true
	case errs.Is(err, order.ErrInvalidID),
		errs.Is(err, order.ErrInvalidUserID),
		errs.Is(err, order.ErrInvalidVoucherID):
		return outcomeInvalid, true
	default:
		return outcomeFailed, false
	}
}

// Consumer is the single goroutine that drains the queue into the database.
type Consumer struct {
	queue     *Queue
	persister commands.OrderPersister
	log       AdmissionLog
	logger    *slog.Logger
	timeout   time.Duration

	startOnce sync.Once
	done      chan struct{}
}

func NewConsumer(queue *Queue, persister commands.OrderPersister, log AdmissionLog, logger *slog.Logger, cfg config.Config) *Consumer {
	return &Consumer{
		queue:     queue,
		persister: persister,
		log:       log,
		logger:    logger,
		timeout:   cfg.Seckill.PersistTimeout,
		done:      make(chan struct{}),
	}
}

func (c *Consumer) Start() {
	c.startOnce.Do(func() {
		go c.run()
	})
}

// Stop closes the queue and waits for the backlog to drain or ctx to expire.
func (c *Consumer) Stop(ctx context.Context) error {
	c.queue.Close()
	c.Start()
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		c.logger.Error("order consumer stopped before the queue drained", "remaining", c.queue.Len())
		return ctx.Err()
	}
}

func (c *Consumer) run() {
	defer close(c.done)
	for task := range c.queue.tasks {
		metrics.QueueDepth.Set(float64(c.queue.Len()))
		c.handle(*task)
		c.queue.release(task.LogEntryID)
	}
}

func (c *Consumer) handle(task order.Task) {
	defer func() {
		if r := recover(); r != nil {
			metrics.OrdersPersisted.WithLabelValues(outcomePanic).Inc()
			metrics.PersistFailures.Inc()
			c.logger.Error("order persistence panicked",
				"order_id", task.OrderID.String(),
				"panic", fmt.Sprint(r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	start := time.Now()
	err := c.persister.Persist(ctx, task)
	metrics.PersistDuration.Observe(time.Since(start).Seconds())

	outcome, settled := classifyPersist(err)
	metrics.OrdersPersisted.WithLabelValues(outcome).Inc()

	switch outcome {
	case outcomeCreated:
	case outcomeDuplicate:
		c.logger.Warn("order already persisted",
			"order_id", task.OrderID.String(),
			"user_id", task.UserID.String(),
			"voucher_id", task.VoucherID)
	default:
		metrics.PersistFailures.Inc()
		c.logger.Error("failed to persist admitted order",
			"order_id", task.OrderID.String(),
			"user_id", task.UserID.String(),
			"voucher_id", task.VoucherID,
			"outcome", outcome,
			"error", err.Error())
	}

	if settled {
		if ackErr := c.log.Ack(context.WithoutCancel(ctx), task.LogEntryID); ackErr != nil {
			c.logger.Warn("failed to acknowledge admission log entry",
				"order_id", task.OrderID.String(),
				"entry_id", task.LogEntryID,
				"error", ackErr.Error())
		}
	}
}

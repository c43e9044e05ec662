package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seckill-service/internal/infra/lock"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"
)

// ReconcileLockName is shared by every instance so only one replays at a time.
const ReconcileLockName = "reconcile:orders"

const (
	outcomeRequeued = "requeued"
	outcomeHeld     = "held"
	outcomeDeferred = "deferred"
)

// Reconciler replays admission log entries that were never settled, which
// happens when an instance stops with tasks still queued or a persist failed.
// Replayed tasks go through the queue, so the consumer stays the only writer.
type Reconciler struct {
	log    AdmissionLog
	queue  *Queue
	locks  *lock.Client
	logger *slog.Logger

	interval time.Duration
	grace    time.Duration
	batch    int64
	lockTTL  time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
	done      chan struct{}
}

func NewReconciler(log AdmissionLog, queue *Queue, locks *lock.Client, logger *slog.Logger, cfg config.Config) *Reconciler {
	return &Reconciler{
		log:      log,
		queue:    queue,
		locks:    locks,
		logger:   logger,
		interval: cfg.Seckill.ReconcileInterval,
		grace:    cfg.Seckill.ReconcileGrace,
		batch:    cfg.Seckill.ReconcileBatch,
		lockTTL:  cfg.Seckill.ReconcileLockTTL,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *Reconciler) Start() {
	r.startOnce.Do(func() {
		go r.loop()
	})
}

func (r *Reconciler) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() { close(r.stop) })
	r.Start()
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Reconciler) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), r.lockTTL)
			if _, err := r.RunOnce(ctx); err != nil {
				r.logger.Error("admission log reconciliation failed", "error", err.Error())
			}
			cancel()
		}
	}
}

// RunOnce requeues up to one batch of unsettled entries and returns how many it
// requeued. Entries this instance still holds are skipped. It does nothing,
// without error, while another instance holds the lock.
func (r *Reconciler) RunOnce(ctx context.Context) (int, error) {
	requeued := 0
	m := r.locks.NewMutex(ReconcileLockName)

	err := lock.TryWithLock(ctx, m, r.lockTTL, func(ctx context.Context) error {
		tasks, err := r.log.Pending(ctx, r.grace, r.batch)
		if err != nil {
			return err
		}

		for i, task := range tasks {
			if err := ctx.Err(); err != nil {
				return err
			}

			queued, qerr := r.queue.Requeue(task)
			if qerr != nil {
				// full or closed queue, the rest waits for the next pass
				remaining := len(tasks) - i
				metrics.ReconciledOrders.WithLabelValues(outcomeDeferred).Add(float64(remaining))
				r.logger.Warn("order queue refused replayed orders",
					"remaining", remaining,
					"error", qerr.Error())
				return nil
			}
			if !queued {
				metrics.ReconciledOrders.WithLabelValues(outcomeHeld).Inc()
				continue
			}
			metrics.ReconciledOrders.WithLabelValues(outcomeRequeued).Inc()
			requeued++
		}
		return nil
	})
	if errs.Is(err, lock.ErrNotAcquired) {
		return 0, nil
	}
	return requeued, err
}

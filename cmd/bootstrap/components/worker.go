package components

import (
	"context"
	"log/slog"

	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewQueueFromConfig,
		func(q *worker.Queue) commands.OrderQueue { return q },
		worker.NewConsumer,
		worker.NewReconciler,
	),
	fx.Invoke(registerWorkerLifecycle),
)

// The consumer stops after the HTTP server (fx stops in reverse order) and
// drains whatever is still queued within the stop timeout.
func registerWorkerLifecycle(lc fx.Lifecycle, consumer *worker.Consumer, reconciler *worker.Reconciler, queue *worker.Queue, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			consumer.Start()
			reconciler.Start()
			logger.Info("order workers started", "queue_capacity", queue.Cap())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := reconciler.Stop(ctx); err != nil {
				logger.Warn("reconciler did not stop cleanly", "error", err.Error())
			}
			return consumer.Stop(ctx)
		},
	})
}

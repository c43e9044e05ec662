package commands

import (
	"context"
	"log/slog"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrVoucherNotFound  = voucher.ErrNotFound
	ErrInvalidAdmission = errs.Mark(errs.New("voucher id and user id are required"), errs.ErrDomainValidation)
)

// AdmissionResult carries either the id of the accepted order or the reason it was refused.
type AdmissionResult struct {
	OrderID   order.ID
	Rejection voucher.Rejection
}

func (r *AdmissionResult) Admitted() bool {
	return r.Rejection == voucher.RejectionNone
}

type SeckillCommands interface {
	AdmitAndEnqueue(ctx context.Context, voucherID int64, userID uuid.UUID) (*AdmissionResult, error)
}

type seckillCommandsImpl struct {
	gate     AdmissionGate
	ids      IDGenerator
	log      AdmissionLog
	queue    OrderQueue
	clock    clock.Clock
	logger   *slog.Logger
	idPrefix string
}

func NewSeckillCommands(
	gate AdmissionGate,
	ids IDGenerator,
	log AdmissionLog,
	queue OrderQueue,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) SeckillCommands {
	return &seckillCommandsImpl{
		gate:     gate,
		ids:      ids,
		log:      log,
		queue:    queue,
		clock:    clk,
		logger:   logger,
		idPrefix: cfg.Seckill.OrderIDPrefix,
	}
}

// AdmitAndEnqueue runs the atomic gate and hands admitted purchases to the
// background persister. Contention outcomes are returned as a Rejection, not an
// error. Once the gate has admitted the user, a later failure reverts it unless
// the admission log still holds the task; that task is reported as admitted and
// left for the reconciler.
func (uc *seckillCommandsImpl) AdmitAndEnqueue(ctx context.Context, voucherID int64, userID uuid.UUID) (*AdmissionResult, error) {
	if voucherID <= 0 || userID == uuid.Nil {
		return nil, ErrInvalidAdmission
	}

	rejection, err := uc.gate.Admit(ctx, voucherID, userID)
	if err != nil {
		if errs.Is(err, voucher.ErrNotFound) {
			metrics.Admissions.WithLabelValues("not_found").Inc()
			return nil, ErrVoucherNotFound
		}
		metrics.Admissions.WithLabelValues("error").Inc()
		return nil, errs.Mark(errs.Wrap(err, "admission gate"), errs.ErrStoreUnavailable)
	}
	if rejection != voucher.RejectionNone {
		metrics.Admissions.WithLabelValues(rejection.String()).Inc()
		return &AdmissionResult{Rejection: rejection}, nil
	}

	id, err := uc.ids.NextID(ctx, uc.idPrefix)
	if err != nil {
		uc.revert(ctx, voucherID, userID)
		metrics.Admissions.WithLabelValues("error").Inc()
		return nil, errs.Mark(errs.Wrap(err, "mint order id"), errs.ErrStoreUnavailable)
	}

	task := order.Task{
		OrderID:    order.ID(id),
		UserID:     userID,
		VoucherID:  voucherID,
		EnqueuedAt: uc.clock.Now(),
	}

	entryID, err := uc.log.Append(ctx, task)
	if err != nil {
		uc.revert(ctx, voucherID, userID)
		metrics.Admissions.WithLabelValues("error").Inc()
		return nil, errs.Mark(errs.Wrap(err, "append admission log"), errs.ErrStoreUnavailable)
	}
	task.LogEntryID = entryID

	if err := uc.queue.Enqueue(ctx, task); err != nil {
		// the gate is only reverted once the log entry is gone, otherwise the
		// reconciler could persist an order whose stock was handed back
		if ackErr := uc.log.Ack(context.WithoutCancel(ctx), entryID); ackErr != nil {
			uc.logger.Warn("order queue refused task, leaving it to the reconciler",
				"order_id", task.OrderID.String(),
				"entry_id", entryID,
				"enqueue_error", err.Error(),
				"error", ackErr.Error())
			metrics.Admissions.WithLabelValues("deferred").Inc()
			return &AdmissionResult{OrderID: task.OrderID}, nil
		}
		uc.revert(ctx, voucherID, userID)
		metrics.Admissions.WithLabelValues("queue_full").Inc()
		return nil, errs.Wrap(err, "enqueue order")
	}

	metrics.Admissions.WithLabelValues("admitted").Inc()
	return &AdmissionResult{OrderID: task.OrderID}, nil
}

func (uc *seckillCommandsImpl) revert(ctx context.Context, voucherID int64, userID uuid.UUID) {
	if err := uc.gate.Revert(context.WithoutCancel(ctx), voucherID, userID); err != nil {
		uc.logger.Error("failed to revert admission",
			"voucher_id", voucherID,
			"user_id", userID.String(),
			"error", err.Error())
	}
}

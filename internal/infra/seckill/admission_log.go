package seckill

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra/kv"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// AdmissionLog records every admitted order in a Redis stream until its row exists
// in the database. Entries left behind by a crash are replayed by the reconciler.
type AdmissionLog struct {
	store  kv.Store
	clock  clock.Clock
	logger *slog.Logger
	stream string
}

func NewAdmissionLog(store kv.Store, clk clock.Clock, logger *slog.Logger) *AdmissionLog {
	return &AdmissionLog{
		store:  store,
		clock:  clk,
		logger: logger,
		stream: AdmissionStream,
	}
}

func (l *AdmissionLog) Append(ctx context.Context, task order.Task) (string, error) {
	return l.store.XAdd(ctx, l.stream, map[string]any{
		"order_id":    task.OrderID.String(),
		"user_id":     task.UserID.String(),
		"voucher_id":  strconv.FormatInt(task.VoucherID, 10),
		"enqueued_at": strconv.FormatInt(task.EnqueuedAt.UnixMilli(), 10),
	})
}

func (l *AdmissionLog) Ack(ctx context.Context, entryID string) error {
	if entryID == "" {
		return nil
	}
	return l.store.XDel(ctx, l.stream, entryID)
}

// Pending returns up to limit entries enqueued more than olderThan ago, oldest first.
// Unreadable entries are logged and dropped.
func (l *AdmissionLog) Pending(ctx context.Context, olderThan time.Duration, limit int64) ([]order.Task, error) {
	entries, err := l.store.XRange(ctx, l.stream, "-", "+", limit)
	if err != nil {
		return nil, err
	}

	cutoff := l.clock.Now().Add(-olderThan)
	tasks := make([]order.Task, 0, len(entries))
	for _, e := range entries {
		task, err := taskFromEntry(e)
		if err != nil {
			l.logger.Error("dropping unreadable admission log entry", "entry_id", e.ID, "error", err.Error())
			if ackErr := l.Ack(ctx, e.ID); ackErr != nil {
				return nil, ackErr
			}
			continue
		}
		// The stream is append-only, so everything after a young entry is younger too.
		if task.EnqueuedAt.After(cutoff) {
			break
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

var errMalformedEntry = errs.New("malformed admission log entry")

func taskFromEntry(e kv.StreamEntry) (order.Task, error) {
	orderID, err := order.ParseID(e.Values["order_id"])
	if err != nil {
		return order.Task{}, errs.Mark(errs.Wrap(err, "order_id"), errMalformedEntry)
	}
	userID, err := uuid.Parse(e.Values["user_id"])
	if err != nil {
		return order.Task{}, errs.Mark(errs.Wrap(err, "user_id"), errMalformedEntry)
	}
	voucherID, err := strconv.ParseInt(e.Values["voucher_id"], 10, 64)
	if err != nil {
		return order.Task{}, errs.Mark(errs.Wrap(err, "voucher_id"), errMalformedEntry)
	}
	enqueuedMs, err := strconv.ParseInt(e.Values["enqueued_at"], 10, 64)
	if err != nil {
		return order.Task{}, errs.Mark(errs.Wrap(err, "enqueued_at"), errMalformedEntry)
	}

	return order.Task{
		OrderID:    orderID,
		UserID:     userID,
		VoucherID:  voucherID,
		EnqueuedAt: time.UnixMilli(enqueuedMs),
		LogEntryID: e.ID,
	}, nil
}

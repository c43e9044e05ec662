package idgen

import (
	"context"
	"log/slog"
	"time"

	"seckill-service/internal/infra/kv"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/metrics"
)

const (
	// 2024-01-01T00:00:00Z
	EpochSeconds int64 = 1704067200

	sequenceBits        = 32
	sequenceMask uint64 = 1<<sequenceBits - 1
)

var (
	ErrEmptyPrefix      = errs.New("id prefix must not be empty")
	ErrClockBeforeEpoch = errs.New("clock is before id epoch")
)

// Worker mints 64-bit ids: high 32 bits are seconds since EpochSeconds, low 32 bits
// a per-prefix counter that restarts every UTC day. Ids from different instances are
// unique because the counter lives in the shared store.
//
// The sequence field holds 2^32-1 values per prefix per day; beyond that it wraps and
// uniqueness is only kept by the timestamp part. Exceeding it is logged and counted.
type Worker struct {
	store  kv.Store
	clock  clock.Clock
	logger *slog.Logger
}

func NewWorker(store kv.Store, clk clock.Clock, logger *slog.Logger) *Worker {
	return &Worker{store: store, clock: clk, logger: logger}
}

func (w *Worker) NextID(ctx context.Context, prefix string) (uint64, error) {
	if prefix == "" {
		return 0, ErrEmptyPrefix
	}

	now := w.clock.Now().UTC()
	elapsed := now.Unix() - EpochSeconds
	if elapsed < 0 {
		return 0, ErrClockBeforeEpoch
	}

	seq, err := w.store.Incr(ctx, kv.CounterKey(prefix, now))
	if err != nil {
		return 0, errs.Wrap(err, "increment id counter")
	}
	if uint64(seq) > sequenceMask {
		metrics.IDSequenceOverflows.WithLabelValues(prefix).Inc()
		w.logger.Warn("daily id sequence exhausted, sequence wraps",
			"prefix", prefix, "sequence", seq)
	}

	return uint64(elapsed)<<sequenceBits | uint64(seq)&sequenceMask, nil
}

// Decompose splits an id into the second it was minted and its daily sequence number.
func Decompose(id uint64) (time.Time, uint32) {
	secs := int64(id >> sequenceBits)
	return time.Unix(EpochSeconds+secs, 0).UTC(), uint32(id & sequenceMask)
}

package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=mock_commands seckill-service/internal/usecase/commands AdmissionGate,IDGenerator,OrderQueue,AdmissionLog,CacheInvalidator,ShopCacheWarmer,SeckillCommands,VoucherCommands,ShopCommands,OrderPersister

import (
	"context"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrQueueFull   = errs.New("order queue is full")
	ErrQueueClosed = errs.New("order queue is closed")
)

// AdmissionGate is the atomic fast path deciding who may buy.
type AdmissionGate interface {
	Preload(ctx context.Context, v *voucher.SeckillVoucher) error
	// PreloadIfAbsent loads v only when the gate holds no state for it.
	PreloadIfAbsent(ctx context.Context, v *voucher.SeckillVoucher) (bool, error)
	Admit(ctx context.Context, voucherID int64, userID uuid.UUID) (voucher.Rejection, error)
	// Revert undoes an admission whose order could not be handed off.
	Revert(ctx context.Context, voucherID int64, userID uuid.UUID) error
}

type IDGenerator interface {
	NextID(ctx context.Context, prefix string) (uint64, error)
}

type OrderQueue interface {
	Enqueue(ctx context.Context, task order.Task) error
}

// AdmissionLog keeps admitted tasks durable until their order row exists.
type AdmissionLog interface {
	Append(ctx context.Context, task order.Task) (string, error)
	Ack(ctx context.Context, entryID string) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, keyPrefix, id string) error
}

type ShopCacheWarmer interface {
	Warm(ctx context.Context, keyPrefix, id string, value *queries.ShopView) error
	// WarmOnly reports that reads never load from the database, so a changed
	// entry has to be rewritten instead of dropped.
	WarmOnly() bool
}

package shared

//go:generate mockgen -destination=../../../tests/mock/shared/mock_shared.go -package=mock_shared seckill-service/internal/usecase/shared UnitOfWork,Tx,VoucherRepository,OrderRepository,ShopRepository

import (
	"context"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/domain/shop"
	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra/pgsql"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction, repositories may only read
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Shops() ShopRepository
	DB() pgsql.DBTX
}

type VoucherRepository interface {
	FindByID(ctx context.Context, tx pgsql.DBTX, id int64) (*voucher.SeckillVoucher, error)
	Create(ctx context.Context, tx pgsql.DBTX, v *voucher.SeckillVoucher) (int64, error)
	// DecrementStock reports false when the durable stock is already exhausted.
	DecrementStock(ctx context.Context, tx pgsql.DBTX, voucherID int64) (bool, error)
}

type OrderRepository interface {
	ExistsByUserAndVoucher(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID, voucherID int64) (bool, error)
	Create(ctx context.Context, tx pgsql.DBTX, o *order.VoucherOrder) error
}

type ShopRepository interface {
	Update(ctx context.Context, tx pgsql.DBTX, s *shop.Shop) error
}

package repository

import (
	"context"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	VoucherOrderExists(ctx context.Context, db pgsql.DBTX, userID uuid.UUID, voucherID int64) (bool, error)
	CreateVoucherOrder(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateVoucherOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      pgsql.DBTX
}

func NewOrderRepository(queries *pgsql.Queries, db pgsql.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) ExistsByUserAndVoucher(ctx context.Context, tx pgsql.DBTX, userID uuid.UUID, voucherID int64) (bool, error) {
	exists, err := r.queries.VoucherOrderExists(ctx, tx, userID, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check existing voucher order", err)
	}
	return exists, nil
}

func (r *OrderRepository) Create(ctx context.Context, tx pgsql.DBTX, o *order.VoucherOrder) error {
	id, err := pgconv.Uint64ToInt8(uint64(o.ID()))
	if err != nil {
		return infra.WrapRepoErr("invalid voucher order id", err, infra.KindCheckViolated)
	}
	params := pgsql.CreateVoucherOrderParams{
		ID:        id,
		UserID:    o.UserID(),
		VoucherID: o.VoucherID(),
		CreatedAt: pgconv.TimeToPgtype(o.CreatedAt()),
	}
	if err := r.queries.CreateVoucherOrder(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create voucher order", err)
	}
	return nil
}

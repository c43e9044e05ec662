package readstore

import (
	"context"

	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/pgconv"
	"seckill-service/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetVoucherOrder(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.VoucherOrders, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      pgsql.DBTX
}

func NewOrderReadStore(queries *pgsql.Queries, db pgsql.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uint64) (*queries.OrderView, error) {
	key, err := pgconv.Uint64ToInt8(id)
	if err != nil {
		return nil, infra.WrapRepoErr("voucher order not found", err, infra.KindNotFound)
	}
	row, err := r.queries.GetVoucherOrder(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get voucher order by id", err)
	}
	return &queries.OrderView{
		ID:        pgconv.Int8ToUint64(row.ID),
		UserID:    row.UserID,
		VoucherID: row.VoucherID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

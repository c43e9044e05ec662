package readstore

import (
	"context"

	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/pgconv"
	"seckill-service/internal/usecase/queries"
)

type VoucherReadQueries interface {
	GetSeckillVoucher(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.SeckillVouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      pgsql.DBTX
}

func NewVoucherReadStore(queries *pgsql.Queries, db pgsql.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByID leaves State empty; it depends on the caller's clock.
func (r *VoucherReadStore) FindByID(ctx context.Context, id int64) (*queries.SeckillVoucherView, error) {
	row, err := r.queries.GetSeckillVoucher(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seckill voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get seckill voucher by id", err)
	}
	return &queries.SeckillVoucherView{
		ID:        row.ID,
		ShopID:    row.ShopID,
		Title:     row.Title,
		Stock:     row.Stock,
		BeginAt:   pgconv.TimeFromPgtype(row.BeginAt),
		EndAt:     pgconv.TimeFromPgtype(row.EndAt),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

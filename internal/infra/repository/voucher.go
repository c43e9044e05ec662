package repository

import (
	"context"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/pkg/pgconv"
)

type VoucherQueries interface {
	GetSeckillVoucher(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.SeckillVouchers, error)
	CreateSeckillVoucher(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateSeckillVoucherParams) (int64, error)
	DecrementVoucherStock(ctx context.Context, db pgsql.DBTX, id int64) (int64, error)
}

type VoucherRepository struct {
	queries VoucherQueries
	db      pgsql.DBTX
}

func NewVoucherRepository(queries *pgsql.Queries, db pgsql.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) FindByID(ctx context.Context, tx pgsql.DBTX, id int64) (*voucher.SeckillVoucher, error) {
	row, err := r.queries.GetSeckillVoucher(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("seckill voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get seckill voucher by id", err)
	}
	return voucher.ReconstructSeckillVoucher(
		row.ID,
		row.ShopID,
		row.Title,
		int(row.Stock),
		pgconv.TimeFromPgtype(row.BeginAt),
		pgconv.TimeFromPgtype(row.EndAt),
	), nil
}

func (r *VoucherRepository) Create(ctx context.Context, tx pgsql.DBTX, v *voucher.SeckillVoucher) (int64, error) {
	stock, err := pgconv.IntToInt4(v.Stock())
	if err != nil {
		return 0, errs.Wrapf(err, "stock %d", v.Stock())
	}
	params := pgsql.CreateSeckillVoucherParams{
		ShopID:  v.ShopID(),
		Title:   v.Title(),
		Stock:   stock,
		BeginAt: pgconv.TimeToPgtype(v.BeginAt()),
		EndAt:   pgconv.TimeToPgtype(v.EndAt()),
	}
	id, err := r.queries.CreateSeckillVoucher(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create seckill voucher", err)
	}
	return id, nil
}

func (r *VoucherRepository) DecrementStock(ctx context.Context, tx pgsql.DBTX, voucherID int64) (bool, error) {
	affected, err := r.queries.DecrementVoucherStock(ctx, tx, voucherID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement voucher stock", err)
	}
	return affected == 1, nil
}

package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createSeckillVoucher = `
INSERT INTO seckill_vouchers (shop_id, title, stock, begin_at, end_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

type CreateSeckillVoucherParams struct {
	ShopID  int64
	Title   string
	Stock   int32
	BeginAt pgtype.Timestamptz
	EndAt   pgtype.Timestamptz
}

func (q *Queries) CreateSeckillVoucher(ctx context.Context, db DBTX, arg CreateSeckillVoucherParams) (int64, error) {
	row := db.QueryRow(ctx, createSeckillVoucher,
		arg.ShopID,
		arg.Title,
		arg.Stock,
		arg.BeginAt,
		arg.EndAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getSeckillVoucher = `
SELECT id, shop_id, title, stock, begin_at, end_at, created_at, updated_at
FROM seckill_vouchers
WHERE id = $1`

func (q *Queries) GetSeckillVoucher(ctx context.Context, db DBTX, id int64) (SeckillVouchers, error) {
	row := db.QueryRow(ctx, getSeckillVoucher, id)
	var i SeckillVouchers
	err := row.Scan(
		&i.ID,
		&i.ShopID,
		&i.Title,
		&i.Stock,
		&i.BeginAt,
		&i.EndAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// The stock guard keeps the durable count from going negative even if the
// fast path and the database disagree.
const decrementVoucherStock = `
UPDATE seckill_vouchers
SET stock = stock - 1, updated_at = now()
WHERE id = $1 AND stock > 0`

func (q *Queries) DecrementVoucherStock(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, decrementVoucherStock, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

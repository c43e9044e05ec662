package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const voucherOrderExists = `
SELECT EXISTS (
    SELECT 1 FROM voucher_orders WHERE user_id = $1 AND voucher_id = $2
)`

func (q *Queries) VoucherOrderExists(ctx context.Context, db DBTX, userID uuid.UUID, voucherID int64) (bool, error) {
	row := db.QueryRow(ctx, voucherOrderExists, userID, voucherID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const createVoucherOrder = `
INSERT INTO voucher_orders (id, user_id, voucher_id, created_at)
VALUES ($1, $2, $3, $4)`

type CreateVoucherOrderParams struct {
	ID        int64
	UserID    uuid.UUID
	VoucherID int64
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateVoucherOrder(ctx context.Context, db DBTX, arg CreateVoucherOrderParams) error {
	_, err := db.Exec(ctx, createVoucherOrder,
		arg.ID,
		arg.UserID,
		arg.VoucherID,
		arg.CreatedAt,
	)
	return err
}

const getVoucherOrder = `
SELECT id, user_id, voucher_id, created_at
FROM voucher_orders
WHERE id = $1`

func (q *Queries) GetVoucherOrder(ctx context.Context, db DBTX, id int64) (VoucherOrders, error) {
	row := db.QueryRow(ctx, getVoucherOrder, id)
	var i VoucherOrders
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VoucherID,
		&i.CreatedAt,
	)
	return i, err
}

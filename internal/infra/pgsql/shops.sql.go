package pgsql

import "context"

const getShop = `
SELECT id, name, type_id, address, avg_price, score, created_at, updated_at
FROM shops
WHERE id = $1`

func (q *Queries) GetShop(ctx context.Context, db DBTX, id int64) (Shops, error) {
	row := db.QueryRow(ctx, getShop, id)
	var i Shops
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TypeID,
		&i.Address,
		&i.AvgPrice,
		&i.Score,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateShop = `
UPDATE shops
SET name = $2, type_id = $3, address = $4, avg_price = $5, score = $6, updated_at = now()
WHERE id = $1`

type UpdateShopParams struct {
	ID       int64
	Name     string
	TypeID   int64
	Address  string
	AvgPrice int64
	Score    int32
}

func (q *Queries) UpdateShop(ctx context.Context, db DBTX, arg UpdateShopParams) (int64, error) {
	result, err := db.Exec(ctx, updateShop,
		arg.ID,
		arg.Name,
		arg.TypeID,
		arg.Address,
		arg.AvgPrice,
		arg.Score,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

package readstore

import (
	"context"

	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/pgconv"
	"seckill-service/internal/usecase/queries"
)

type ShopReadQueries interface {
	GetShop(ctx context.Context, db pgsql.DBTX, id int64) (pgsql.Shops, error)
}

type ShopReadStore struct {
	queries ShopReadQueries
	db      pgsql.DBTX
}

func NewShopReadStore(queries *pgsql.Queries, db pgsql.DBTX) *ShopReadStore {
	return &ShopReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ShopReadStore) FindByID(ctx context.Context, id int64) (*queries.ShopView, error) {
	row, err := r.queries.GetShop(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get shop by id", err)
	}
	return &queries.ShopView{
		ID:        row.ID,
		Name:      row.Name,
		TypeID:    row.TypeID,
		Address:   row.Address,
		AvgPrice:  row.AvgPrice,
		Score:     row.Score,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

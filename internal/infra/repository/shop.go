package repository

import (
	"context"

	"seckill-service/internal/domain/shop"
	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"

	"github.com/jackc/pgx/v5"
)

type ShopWriteQueries interface {
	UpdateShop(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateShopParams) (int64, error)
}

type ShopRepository struct {
	queries ShopWriteQueries
	db      pgsql.DBTX
}

func NewShopRepository(queries *pgsql.Queries, db pgsql.DBTX) *ShopRepository {
	return &ShopRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShopRepository) Update(ctx context.Context, tx pgsql.DBTX, s *shop.Shop) error {
	params := pgsql.UpdateShopParams{
		ID:       s.ID(),
		Name:     s.Name(),
		TypeID:   s.TypeID(),
		Address:  s.Address(),
		AvgPrice: s.AvgPrice(),
		// #nosec G115 -- score is bounded by the domain constructor
		Score: int32(s.Score()),
	}
	affected, err := r.queries.UpdateShop(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update shop", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("shop not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

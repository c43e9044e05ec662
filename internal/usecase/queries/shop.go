package queries

import (
	"context"
	"strconv"

	"seckill-service/internal/infra"
	"seckill-service/internal/infra/cache"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/shared"
)

var (
	ErrShopNotFound  = errs.New("shop not found")
	ErrInvalidShopID = errs.Mark(errs.New("shop id must be positive"), errs.ErrDomainValidation)
)

type ShopReadStore interface {
	FindByID(ctx context.Context, id int64) (*ShopView, error)
}

// ShopCacheReader is a cache-aside reader bound to one strategy.
type ShopCacheReader interface {
	Get(ctx context.Context, keyPrefix, id string, loader cache.Loader[ShopView]) (*ShopView, error)
}

type ShopQueries interface {
	GetShop(ctx context.Context, id int64) (*ShopView, error)
}

type shopQueriesImpl struct {
	store ShopReadStore
	cache ShopCacheReader
}

func NewShopQueries(store ShopReadStore, cache ShopCacheReader) ShopQueries {
	return &shopQueriesImpl{store: store, cache: cache}
}

func (q *shopQueriesImpl) GetShop(ctx context.Context, id int64) (*ShopView, error) {
	if id <= 0 {
		return nil, ErrInvalidShopID
	}

	view, err := q.cache.Get(ctx, shared.ShopCacheKeyPrefix, strconv.FormatInt(id, 10), q.load(id))
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrShopNotFound
	}
	return view, nil
}

// load maps "not found" to an empty result so the cache layer can record it.
func (q *shopQueriesImpl) load(id int64) cache.Loader[ShopView] {
	return func(ctx context.Context, _ string) (*ShopView, error) {
		view, err := q.store.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return view, nil
	}
}

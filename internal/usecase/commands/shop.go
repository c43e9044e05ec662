package commands

import (
	"context"
	"log/slog"
	"strconv"

	"seckill-service/internal/domain/shop"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/queries"
	"seckill-service/internal/usecase/shared"
)

var ErrShopNotFound = queries.ErrShopNotFound

type UpdateShopRequest struct {
	ID       int64
	Name     string
	TypeID   int64
	Address  string
	AvgPrice int64
	Score    int
}

type ShopCommands interface {
	UpdateShop(ctx context.Context, req UpdateShopRequest) error
	// WarmShop loads the shop from the database into the cache ahead of traffic.
	WarmShop(ctx context.Context, id int64) error
}

type shopCommandsImpl struct {
	uow    shared.UnitOfWork
	shops  queries.ShopReadStore
	cache  CacheInvalidator
	warmer ShopCacheWarmer
	logger *slog.Logger
}

func NewShopCommands(uow shared.UnitOfWork, shops queries.ShopReadStore, cache CacheInvalidator, warmer ShopCacheWarmer, logger *slog.Logger) ShopCommands {
	return &shopCommandsImpl{
		uow:    uow,
		shops:  shops,
		cache:  cache,
		warmer: warmer,
		logger: logger,
	}
}

// UpdateShop writes the database first and then refreshes the cache. A dropped
// entry is reloaded by the next read; under logical expiration reads never load,
// so the entry is rewritten from the updated row instead.
func (uc *shopCommandsImpl) UpdateShop(ctx context.Context, req UpdateShopRequest) error {
	s, err := shop.NewShop(req.ID, req.Name, req.TypeID, req.Address, req.AvgPrice, req.Score)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Shops().Update(ctx, tx.DB(), s)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return err
	}

	if err := uc.refreshCache(ctx, s.ID()); err != nil {
		uc.logger.Warn("shop updated but cache entry was not refreshed", "shop_id", s.ID(), "error", err.Error())
		return errs.Mark(errs.Wrap(err, "refresh shop cache"), errs.ErrStoreUnavailable)
	}
	return nil
}

func (uc *shopCommandsImpl) refreshCache(ctx context.Context, id int64) error {
	key := strconv.FormatInt(id, 10)
	if !uc.warmer.WarmOnly() {
		return uc.cache.Invalidate(ctx, shared.ShopCacheKeyPrefix, key)
	}
	view, err := uc.shops.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return uc.warmer.Warm(ctx, shared.ShopCacheKeyPrefix, key, view)
}

func (uc *shopCommandsImpl) WarmShop(ctx context.Context, id int64) error {
	if id <= 0 {
		return queries.ErrInvalidShopID
	}
	view, err := uc.shops.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrShopNotFound
		}
		return err
	}
	if err := uc.warmer.Warm(ctx, shared.ShopCacheKeyPrefix, strconv.FormatInt(id, 10), view); err != nil {
		return errs.Mark(errs.Wrap(err, "warm shop cache"), errs.ErrStoreUnavailable)
	}
	return nil
}

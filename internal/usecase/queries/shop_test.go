//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"seckill-service/internal/infra"
	"seckill-service/internal/infra/cache"
	"seckill-service/internal/infra/kv"
	"seckill-service/internal/infra/lock"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/config"
	"seckill-service/internal/usecase/queries"
	"seckill-service/tests/common/builder"
	queriesmock "seckill-service/tests/mock/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShopQueriesTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	mr    *miniredis.Miniredis
	store *queriesmock.MockShopReadStore
	q     queries.ShopQueries
}

func (s *ShopQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mr = miniredis.RunT(s.T())
	rdb := redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.T().Cleanup(func() { _ = rdb.Close() })

	store := kv.NewRedisStore(rdb)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := cache.NewClient(store, lock.NewClient(store), clock.NewRealClock(), logger,
		cache.OptionsFromConfig(config.NewTestConfig().Cache))

	s.store = queriesmock.NewMockShopReadStore(s.ctrl)
	s.q = queries.NewShopQueries(s.store, cache.NewReader[queries.ShopView](client, cache.StrategyPassThrough))
}

func (s *ShopQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestShopQueriesSuite(t *testing.T) {
	suite.Run(t, new(ShopQueriesTestSuite))
}

func (s *ShopQueriesTestSuite) TestGetShop() {
	ctx := context.Background()

	s.Run("second read is served from the cache", func() {
		view := builder.NewShopBuilder().BuildView()
		s.store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		first, err := s.q.GetShop(ctx, 1)
		s.Require().NoError(err)
		second, err := s.q.GetShop(ctx, 1)
		s.Require().NoError(err)

		s.Equal(view.Name, first.Name)
		s.Equal(view.Name, second.Name)
		s.True(view.CreatedAt.Equal(second.CreatedAt))
		s.True(s.mr.Exists("cache:shop:1"))
	})

	s.Run("missing shop is cached as empty and never reloaded", func() {
		notFound := infra.WrapRepoErr("get shop", errors.New("no rows"), infra.KindNotFound)
		s.store.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, notFound).Times(1)

		for range 3 {
			_, err := s.q.GetShop(ctx, 404)
			s.ErrorIs(err, queries.ErrShopNotFound)
		}
		s.Equal("", s.mustGet("cache:shop:404"))
		s.Positive(s.mr.TTL("cache:shop:404"))
		s.LessOrEqual(s.mr.TTL("cache:shop:404"), 2*time.Minute)
	})

	s.Run("database failure is returned and nothing is cached", func() {
		s.store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, errors.New("conn reset"))

		_, err := s.q.GetShop(ctx, 5)
		s.Error(err)
		s.False(s.mr.Exists("cache:shop:5"))
	})

	s.Run("invalid id", func() {
		_, err := s.q.GetShop(ctx, 0)
		s.ErrorIs(err, queries.ErrInvalidShopID)
	})
}

func (s *ShopQueriesTestSuite) mustGet(key string) string {
	v, err := s.mr.Get(key)
	s.Require().NoError(err)
	return v
}

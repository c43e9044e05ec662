//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/usecase/queries"
	queriesmock "seckill-service/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVoucherQueries_GetVoucher(t *testing.T) {
	ctx := context.Background()
	begin := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		stock int32
		now   time.Time
		want  voucher.State
	}{
		{name: "not started", stock: 10, now: begin.Add(-time.Second), want: voucher.StateNotStarted},
		{name: "open", stock: 10, now: begin, want: voucher.StateOpen},
		{name: "sold out", stock: 0, now: begin.Add(time.Minute), want: voucher.StateSoldOut},
		{name: "closed", stock: 10, now: begin.Add(2 * time.Hour), want: voucher.StateClosed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockVoucherReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&queries.SeckillVoucherView{
				ID:      1,
				ShopID:  1,
				Title:   "Flash",
				Stock:   tc.stock,
				BeginAt: begin,
				EndAt:   begin.Add(time.Hour),
			}, nil)

			got, err := queries.NewVoucherQueries(store, clock.NewMockClock(tc.now)).GetVoucher(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.want.String(), got.State)
		})
	}

	t.Run("unknown voucher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockVoucherReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(2)).
			Return(nil, infra.WrapRepoErr("get voucher", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewVoucherQueries(store, clock.NewRealClock()).GetVoucher(ctx, 2)
		assert.ErrorIs(t, err, queries.ErrVoucherNotFound)
	})
}

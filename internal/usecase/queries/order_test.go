//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seckill-service/internal/domain/auth"
	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra"
	"seckill-service/internal/usecase/queries"
	queriesmock "seckill-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_GetOrder(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	view := &queries.OrderView{ID: 99, UserID: owner, VoucherID: 1, CreatedAt: time.Now()}

	cases := []struct {
		name  string
		actor uuid.UUID
		role  auth.Role
		errIs error
	}{
		{name: "owner", actor: owner, role: auth.RoleCustomer},
		{name: "another customer", actor: uuid.New(), role: auth.RoleCustomer, errIs: queries.ErrOrderAccess},
		{name: "operator", actor: uuid.New(), role: auth.RoleOperator},
		{name: "admin", actor: uuid.New(), role: auth.RoleAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockOrderReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), uint64(99)).Return(view, nil)

			got, err := queries.NewOrderQueries(store).GetOrder(ctx, order.ID(99), tc.actor, tc.role)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("order still in the queue is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), uint64(100)).
			Return(nil, infra.WrapRepoErr("get order", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewOrderQueries(store).GetOrder(ctx, order.ID(100), owner, auth.RoleCustomer)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

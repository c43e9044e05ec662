//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra"
	"seckill-service/internal/infra/pgsql"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/shared"
	sharedmock "seckill-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderPersisterTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	vouchers *sharedmock.MockVoucherRepository
	orders   *sharedmock.MockOrderRepository
	now      time.Time
	uc       commands.OrderPersister
}

func (s *OrderPersisterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.vouchers = sharedmock.NewMockVoucherRepository(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.now = time.Date(2024, 11, 11, 0, 1, 0, 0, time.UTC)
	s.uc = commands.NewOrderPersister(s.uow, clock.NewMockClock(s.now))

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Vouchers().Return(s.vouchers).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *OrderPersisterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderPersisterSuite(t *testing.T) {
	suite.Run(t, new(OrderPersisterTestSuite))
}

func (s *OrderPersisterTestSuite) task() order.Task {
	return order.Task{OrderID: 77, UserID: uuid.New(), VoucherID: 3, EnqueuedAt: s.now.Add(-time.Second), LogEntryID: "1-0"}
}

func (s *OrderPersisterTestSuite) TestPersist() {
	ctx := context.Background()

	s.Run("success: decrements stock and stores the order", func() {
		task := s.task()
		s.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(false, nil)
		s.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), task.VoucherID).Return(true, nil)
		s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgsql.DBTX, o *order.VoucherOrder) error {
				s.Equal(task.OrderID, o.ID())
				s.Equal(task.UserID, o.UserID())
				s.True(s.now.Equal(o.CreatedAt()))
				return nil
			})

		s.NoError(s.uc.Persist(ctx, task))
	})

	s.Run("existing order is a duplicate and keeps stock", func() {
		task := s.task()
		s.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), task.UserID, task.VoucherID).Return(true, nil)

		s.ErrorIs(s.uc.Persist(ctx, task), commands.ErrDuplicateOrder)
	})

	s.Run("exhausted durable stock creates nothing", func() {
		task := s.task()
		s.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), task.VoucherID).Return(false, nil)

		s.ErrorIs(s.uc.Persist(ctx, task), commands.ErrStockExhausted)
	})

	s.Run("unique violation on insert is a duplicate", func() {
		task := s.task()
		s.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert order", errors.New("unique"), infra.KindDuplicateKey))

		s.ErrorIs(s.uc.Persist(ctx, task), commands.ErrDuplicateOrder)
	})

	s.Run("database failures pass through", func() {
		task := s.task()
		dbErr := infra.WrapRepoErr("decrement stock", errors.New("conn reset"))
		s.orders.EXPECT().ExistsByUserAndVoucher(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		s.vouchers.EXPECT().DecrementStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, dbErr)

		err := s.uc.Persist(ctx, task)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})

	s.Run("malformed task never opens a transaction", func() {
		ctrl := gomock.NewController(s.T())
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uc := commands.NewOrderPersister(uow, clock.NewMockClock(s.now))

		task := s.task()
		task.UserID = uuid.Nil
		s.ErrorIs(uc.Persist(ctx, task), order.ErrInvalidUserID)
	})
}

//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/shared"
	"seckill-service/tests/common/builder"
	commandsmock "seckill-service/tests/mock/commands"
	sharedmock "seckill-service/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	vouchers *sharedmock.MockVoucherRepository
	gate     *commandsmock.MockAdmissionGate
	uc       commands.VoucherCommands
}

func (s *VoucherCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.vouchers = sharedmock.NewMockVoucherRepository(s.ctrl)
	s.gate = commandsmock.NewMockAdmissionGate(s.ctrl)
	s.uc = commands.NewVoucherCommands(s.uow, s.gate)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().Vouchers().Return(s.vouchers).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
}

func (s *VoucherCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVoucherCommandsSuite(t *testing.T) {
	suite.Run(t, new(VoucherCommandsTestSuite))
}

func (s *VoucherCommandsTestSuite) TestPublishSeckillVoucher() {
	ctx := context.Background()
	req := builder.NewVoucherBuilder().BuildPublishCommand()

	s.Run("success: stored voucher is preloaded with its new id", func() {
		s.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(12), nil)
		s.gate.EXPECT().Preload(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, v *voucher.SeckillVoucher) error {
				s.Equal(int64(12), v.ID())
				s.Equal(req.Stock, v.Stock())
				s.True(req.BeginAt.Equal(v.BeginAt()))
				s.True(req.EndAt.Equal(v.EndAt()))
				return nil
			})

		id, err := s.uc.PublishSeckillVoucher(ctx, req)
		s.Require().NoError(err)
		s.Equal(int64(12), id)
	})

	s.Run("error: invalid voucher is a validation error", func() {
		bad := req
		bad.Stock = 0

		_, err := s.uc.PublishSeckillVoucher(ctx, bad)
		s.ErrorIs(err, voucher.ErrInvalidStock)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: stock that does not fit the stock column", func() {
		bad := req
		bad.Stock = voucher.MaxStock + 1

		_, err := s.uc.PublishSeckillVoucher(ctx, bad)
		s.ErrorIs(err, voucher.ErrStockTooLarge)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: unknown shop", func() {
		s.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert voucher", errors.New("fk"), infra.KindForeignKeyViolated))

		_, err := s.uc.PublishSeckillVoucher(ctx, req)
		s.ErrorIs(err, commands.ErrVoucherShopNotFound)
	})

	s.Run("error: preload failure keeps the id and reports a store outage", func() {
		s.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(13), nil)
		s.gate.EXPECT().Preload(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		id, err := s.uc.PublishSeckillVoucher(ctx, req)
		s.Equal(int64(13), id)
		s.True(errs.Is(err, errs.ErrStoreUnavailable))
	})
}

func (s *VoucherCommandsTestSuite) TestPreloadVoucher() {
	ctx := context.Background()
	stored := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) { b.ID = 21 }).BuildDomain()

	s.Run("success: voucher missing from the gate is loaded from the database", func() {
		s.vouchers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(21)).Return(stored, nil)
		s.gate.EXPECT().PreloadIfAbsent(gomock.Any(), stored).Return(true, nil)

		loaded, err := s.uc.PreloadVoucher(ctx, 21)
		s.Require().NoError(err)
		s.True(loaded)
	})

	s.Run("success: repeating it on a live sale changes nothing", func() {
		s.vouchers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(21)).Return(stored, nil)
		s.gate.EXPECT().PreloadIfAbsent(gomock.Any(), stored).Return(false, nil)
		s.gate.EXPECT().Preload(gomock.Any(), gomock.Any()).Times(0)

		loaded, err := s.uc.PreloadVoucher(ctx, 21)
		s.Require().NoError(err)
		s.False(loaded)
	})

	s.Run("error: unknown voucher", func() {
		s.vouchers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(22)).
			Return(nil, infra.WrapRepoErr("seckill voucher not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.uc.PreloadVoucher(ctx, 22)
		s.ErrorIs(err, commands.ErrVoucherNotFound)
	})

	s.Run("error: gate outage is a store outage", func() {
		s.vouchers.EXPECT().FindByID(gomock.Any(), gomock.Any(), int64(21)).Return(stored, nil)
		s.gate.EXPECT().PreloadIfAbsent(gomock.Any(), stored).Return(false, errors.New("redis down"))

		_, err := s.uc.PreloadVoucher(ctx, 21)
		s.True(errs.Is(err, errs.ErrStoreUnavailable))
	})
}

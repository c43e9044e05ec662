package commands

import (
	"context"
	"time"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/shared"
)

var ErrVoucherShopNotFound = errs.New("shop for voucher not found")

type PublishVoucherRequest struct {
	ShopID  int64
	Title   string
	Stock   int
	BeginAt time.Time
	EndAt   time.Time
}

type VoucherCommands interface {
	PublishSeckillVoucher(ctx context.Context, req PublishVoucherRequest) (int64, error)
	PreloadVoucher(ctx context.Context, id int64) (bool, error)
}

type voucherCommandsImpl struct {
	uow  shared.UnitOfWork
	gate AdmissionGate
}

func NewVoucherCommands(uow shared.UnitOfWork, gate AdmissionGate) VoucherCommands {
	return &voucherCommandsImpl{uow: uow, gate: gate}
}

// PublishSeckillVoucher stores the voucher and loads its stock and window into the
// admission gate. The voucher is not purchasable until the preload succeeds.
func (uc *voucherCommandsImpl) PublishSeckillVoucher(ctx context.Context, req PublishVoucherRequest) (int64, error) {
	v, err := voucher.NewSeckillVoucher(req.ShopID, req.Title, req.Stock, req.BeginAt, req.EndAt)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Vouchers().Create(ctx, tx.DB(), v)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrVoucherShopNotFound
			}
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := uc.gate.Preload(ctx, v.WithID(id)); err != nil {
		return id, errs.Mark(errs.Wrapf(err, "preload voucher %d", id), errs.ErrStoreUnavailable)
	}
	return id, nil
}

// PreloadVoucher loads a stored voucher into the admission gate if the gate has
// never seen it, which recovers a publish whose preload failed. It reports
// whether it loaded anything; a voucher already on sale is left as is.
func (uc *voucherCommandsImpl) PreloadVoucher(ctx context.Context, id int64) (bool, error) {
	var v *voucher.SeckillVoucher
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Vouchers().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		v = found
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, ErrVoucherNotFound
		}
		return false, err
	}

	loaded, err := uc.gate.PreloadIfAbsent(ctx, v)
	if err != nil {
		return false, errs.Mark(errs.Wrapf(err, "preload voucher %d", id), errs.ErrStoreUnavailable)
	}
	return loaded, nil
}

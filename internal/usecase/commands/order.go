package commands

import (
	"context"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/errs"
	"seckill-service/internal/usecase/shared"
)

var (
	ErrDuplicateOrder = errs.New("user already holds an order for this voucher")
	ErrStockExhausted = errs.New("voucher stock exhausted")
)

// OrderPersister turns an admitted task into a durable order row.
type OrderPersister interface {
	Persist(ctx context.Context, task order.Task) error
}

type orderPersisterImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderPersister(uow shared.UnitOfWork, clk clock.Clock) OrderPersister {
	return &orderPersisterImpl{uow: uow, clock: clk}
}

// Persist re-checks the admission against the database: an order that already
// exists yields ErrDuplicateOrder and a voucher without durable stock yields
// ErrStockExhausted. Both leave the database untouched.
func (p *orderPersisterImpl) Persist(ctx context.Context, task order.Task) error {
	o, err := order.FromTask(task, p.clock.Now())
	if err != nil {
		return err
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, derr := tx.Orders().ExistsByUserAndVoucher(ctx, tx.DB(), o.UserID(), o.VoucherID())
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateOrder
		}

		decremented, derr := tx.Vouchers().DecrementStock(ctx, tx.DB(), o.VoucherID())
		if derr != nil {
			return derr
		}
		if !decremented {
			return ErrStockExhausted
		}

		if derr = tx.Orders().Create(ctx, tx.DB(), o); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateOrder
			}
			return derr
		}
		return nil
	})
}

package queries

import (
	"context"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra"
	"seckill-service/internal/pkg/clock"
)

var ErrVoucherNotFound = voucher.ErrNotFound

type VoucherReadStore interface {
	FindByID(ctx context.Context, id int64) (*SeckillVoucherView, error)
}

type VoucherQueries interface {
	GetVoucher(ctx context.Context, id int64) (*SeckillVoucherView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
	clock clock.Clock
}

func NewVoucherQueries(store VoucherReadStore, clk clock.Clock) VoucherQueries {
	return &voucherQueriesImpl{store: store, clock: clk}
}

// GetVoucher reports the durable stock, which trails the admission gate by the
// orders still waiting in the queue.
func (q *voucherQueriesImpl) GetVoucher(ctx context.Context, id int64) (*SeckillVoucherView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}
	view.State = voucher.StateOf(int(view.Stock), view.BeginAt, view.EndAt, q.clock.Now()).String()
	return view, nil
}

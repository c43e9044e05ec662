//go:build unit || e2e

package builder

import (
	"time"

	"seckill-service/internal/domain/voucher"
	reqdto "seckill-service/internal/handler/dto/request"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"
)

type VoucherBuilder struct {
	ID      int64
	ShopID  int64
	Title   string
	Stock   int
	BeginAt time.Time
	EndAt   time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	begin := time.Now().Add(-time.Minute).Truncate(time.Second)
	return &VoucherBuilder{
		ID:      1,
		ShopID:  1,
		Title:   "Half price lunch",
		Stock:   100,
		BeginAt: begin,
		EndAt:   begin.Add(time.Hour),
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VoucherBuilder) BuildDomain() *voucher.SeckillVoucher {
	return voucher.ReconstructSeckillVoucher(b.ID, b.ShopID, b.Title, b.Stock, b.BeginAt, b.EndAt)
}

func (b *VoucherBuilder) BuildPublishRequestDTO() reqdto.PublishVoucherRequest {
	return reqdto.PublishVoucherRequest{
		ShopID:  b.ShopID,
		Title:   b.Title,
		Stock:   b.Stock,
		BeginAt: b.BeginAt,
		EndAt:   b.EndAt,
	}
}

func (b *VoucherBuilder) BuildPublishCommand() commands.PublishVoucherRequest {
	return commands.PublishVoucherRequest{
		ShopID:  b.ShopID,
		Title:   b.Title,
		Stock:   b.Stock,
		BeginAt: b.BeginAt,
		EndAt:   b.EndAt,
	}
}

func (b *VoucherBuilder) BuildView(state voucher.State) *queries.SeckillVoucherView {
	return &queries.SeckillVoucherView{
		ID:        b.ID,
		ShopID:    b.ShopID,
		Title:     b.Title,
		Stock:     int32(b.Stock),
		BeginAt:   b.BeginAt,
		EndAt:     b.EndAt,
		State:     state.String(),
		CreatedAt: b.BeginAt.Add(-time.Hour),
	}
}

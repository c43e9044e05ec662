package request

import (
	"time"

	"seckill-service/internal/usecase/commands"
)

type PublishVoucherRequest struct {
	ShopID  int64     `json:"shop_id" binding:"required,gt=0"`
	Title   string    `json:"title" binding:"required,max=255"`
	Stock   int       `json:"stock" binding:"required,gt=0,max=2147483647"`
	BeginAt time.Time `json:"begin_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required,gtfield=BeginAt"`
}

func (r *PublishVoucherRequest) ToCommand() commands.PublishVoucherRequest {
	return commands.PublishVoucherRequest{
		ShopID:  r.ShopID,
		Title:   r.Title,
		Stock:   r.Stock,
		BeginAt: r.BeginAt,
		EndAt:   r.EndAt,
	}
}

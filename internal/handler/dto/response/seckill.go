package response

import (
	"strconv"

	"seckill-service/internal/domain/order"
	"seckill-service/internal/usecase/queries"
)

// AdmissionResponse carries the order id as a string so clients without 64-bit
// integers do not lose precision.
type AdmissionResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func FromAdmission(id order.ID) *AdmissionResponse {
	return &AdmissionResponse{
		OrderID: id.String(),
		Status:  "queued",
	}
}

type RejectionDetail struct {
	Reason string `json:"reason"`
}

type PublishVoucherResponse struct {
	ID int64 `json:"id"`
}

// PreloadVoucherResponse reports Loaded=false when the gate already held the voucher.
type PreloadVoucherResponse struct {
	ID     int64 `json:"id"`
	Loaded bool  `json:"loaded"`
}

type VoucherResponse struct {
	ID      int64  `json:"id"`
	ShopID  int64  `json:"shop_id"`
	Title   string `json:"title"`
	Stock   int32  `json:"stock"`
	BeginAt int64  `json:"begin_at"`
	EndAt   int64  `json:"end_at"`
	State   string `json:"state"`
}

func FromVoucherView(v *queries.SeckillVoucherView) *VoucherResponse {
	return &VoucherResponse{
		ID:      v.ID,
		ShopID:  v.ShopID,
		Title:   v.Title,
		Stock:   v.Stock,
		BeginAt: v.BeginAt.Unix(),
		EndAt:   v.EndAt.Unix(),
		State:   v.State,
	}
}

type OrderResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	VoucherID int64  `json:"voucher_id"`
	CreatedAt int64  `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:        strconv.FormatUint(v.ID, 10),
		UserID:    v.UserID.String(),
		VoucherID: v.VoucherID,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

package response

import "seckill-service/internal/usecase/queries"

type ShopResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	TypeID    int64   `json:"type_id"`
	Address   string  `json:"address"`
	AvgPrice  int64   `json:"avg_price"`
	Score     float64 `json:"score"`
	UpdatedAt int64   `json:"updated_at"`
}

func FromShopView(v *queries.ShopView) *ShopResponse {
	return &ShopResponse{
		ID:        v.ID,
		Name:      v.Name,
		TypeID:    v.TypeID,
		Address:   v.Address,
		AvgPrice:  v.AvgPrice,
		Score:     float64(v.Score) / 10,
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

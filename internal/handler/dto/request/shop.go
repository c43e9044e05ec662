package request

import "seckill-service/internal/usecase/commands"

type UpdateShopRequest struct {
	Name     string `json:"name" binding:"required,max=128"`
	TypeID   int64  `json:"type_id" binding:"gte=0"`
	Address  string `json:"address" binding:"max=255"`
	AvgPrice int64  `json:"avg_price" binding:"gte=0"`
	Score    int    `json:"score" binding:"gte=0,lte=50"`
}

func (r *UpdateShopRequest) ToCommand(id int64) commands.UpdateShopRequest {
	return commands.UpdateShopRequest{
		ID:       id,
		Name:     r.Name,
		TypeID:   r.TypeID,
		Address:  r.Address,
		AvgPrice: r.AvgPrice,
		Score:    r.Score,
	}
}

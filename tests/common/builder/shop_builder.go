//go:build unit || e2e

package builder

import (
	"time"

	reqdto "seckill-service/internal/handler/dto/request"
	"seckill-service/internal/usecase/commands"
	"seckill-service/internal/usecase/queries"
)

type ShopBuilder struct {
	ID        int64
	Name      string
	TypeID    int64
	Address   string
	AvgPrice  int64
	Score     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewShopBuilder() *ShopBuilder {
	now := time.Now().Truncate(time.Second)
	return &ShopBuilder{
		ID:        1,
		Name:      "Noodle House",
		TypeID:    1,
		Address:   "Main Street 1",
		AvgPrice:  80,
		Score:     45,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ShopBuilder) With(mutate func(*ShopBuilder)) *ShopBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ShopBuilder) BuildView() *queries.ShopView {
	return &queries.ShopView{
		ID:        b.ID,
		Name:      b.Name,
		TypeID:    b.TypeID,
		Address:   b.Address,
		AvgPrice:  b.AvgPrice,
		Score:     int32(b.Score),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *ShopBuilder) BuildUpdateRequestDTO() reqdto.UpdateShopRequest {
	return reqdto.UpdateShopRequest{
		Name:     b.Name,
		TypeID:   b.TypeID,
		Address:  b.Address,
		AvgPrice: b.AvgPrice,
		Score:    b.Score,
	}
}

func (b *ShopBuilder) BuildUpdateCommand() commands.UpdateShopRequest {
	return commands.UpdateShopRequest{
		ID:       b.ID,
		Name:     b.Name,
		TypeID:   b.TypeID,
		Address:  b.Address,
		AvgPrice: b.AvgPrice,
		Score:    b.Score,
	}
}

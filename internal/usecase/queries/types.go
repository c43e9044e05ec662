package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=mock_queries seckill-service/internal/usecase/queries ShopReadStore,ShopCacheReader,ShopQueries,OrderReadStore,OrderQueries,VoucherReadStore,VoucherQueries

import (
	"time"

	"github.com/google/uuid"
)

// ShopView is also the cached representation of a shop, so its json shape is
// part of the cache entry format.
type ShopView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"type_id"`
	Address   string    `json:"address"`
	AvgPrice  int64     `json:"avg_price"`
	Score     int32     `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SeckillVoucherView struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id"`
	Title     string    `json:"title"`
	Stock     int32     `json:"stock"`
	BeginAt   time.Time `json:"begin_at"`
	EndAt     time.Time `json:"end_at"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderView struct {
	ID        uint64    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VoucherID int64     `json:"voucher_id"`
	CreatedAt time.Time `json:"created_at"`
}

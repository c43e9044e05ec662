package pgsql

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Shops struct {
	ID        int64
	Name      string
	TypeID    int64
	Address   string
	AvgPrice  int64
	Score     int32
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type SeckillVouchers struct {
	ID        int64
	ShopID    int64
	Title     string
	Stock     int32
	BeginAt   pgtype.Timestamptz
	EndAt     pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type VoucherOrders struct {
	ID        int64
	UserID    uuid.UUID
	VoucherID int64
	CreatedAt pgtype.Timestamptz
}

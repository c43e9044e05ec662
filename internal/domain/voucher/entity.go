package voucher

import (
	"math"
	"strings"
	"time"

	"seckill-service/internal/pkg/errs"
)

const (
	maxTitleLength = 255
	// stock is stored in an INTEGER column
	MaxStock = math.MaxInt32
)

var (
	ErrNotFound      = errs.New("seckill voucher not found")
	ErrInvalidShopID = errs.New("shop id must be positive")
	ErrEmptyTitle    = errs.New("voucher title is required")
	ErrTitleTooLong  = errs.New("voucher title is too long")
	ErrInvalidStock  = errs.New("stock must be positive")
	ErrStockTooLarge = errs.New("stock exceeds the storable maximum")
	ErrInvalidWindow = errs.New("sale window must end after it begins")
)

// SeckillVoucher is a voucher sold in limited quantity during a fixed window.
type SeckillVoucher struct {
	id      int64
	shopID  int64
	title   string
	stock   int
	beginAt time.Time
	endAt   time.Time
}

func NewSeckillVoucher(shopID int64, title string, stock int, beginAt, endAt time.Time) (*SeckillVoucher, error) {
	if shopID <= 0 {
		return nil, ErrInvalidShopID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if stock <= 0 {
		return nil, ErrInvalidStock
	}
	if stock > MaxStock {
		return nil, ErrStockTooLarge
	}
	if !endAt.After(beginAt) {
		return nil, ErrInvalidWindow
	}

	return &SeckillVoucher{
		shopID:  shopID,
		title:   title,
		stock:   stock,
		beginAt: beginAt,
		endAt:   endAt,
	}, nil
}

func ReconstructSeckillVoucher(id, shopID int64, title string, stock int, beginAt, endAt time.Time) *SeckillVoucher {
	return &SeckillVoucher{
		id:      id,
		shopID:  shopID,
		title:   title,
		stock:   stock,
		beginAt: beginAt,
		endAt:   endAt,
	}
}

func (v *SeckillVoucher) WithID(id int64) *SeckillVoucher {
	cp := *v
	cp.id = id
	return &cp
}

func (v *SeckillVoucher) ID() int64          { return v.id }
func (v *SeckillVoucher) ShopID() int64      { return v.shopID }
func (v *SeckillVoucher) Title() string      { return v.title }
func (v *SeckillVoucher) Stock() int         { return v.stock }
func (v *SeckillVoucher) BeginAt() time.Time { return v.beginAt }
func (v *SeckillVoucher) EndAt() time.Time   { return v.endAt }

// StateAt uses the same inclusive window as the admission gate.
func (v *SeckillVoucher) StateAt(now time.Time) State {
	return StateOf(v.stock, v.beginAt, v.endAt, now)
}

func StateOf(stock int, beginAt, endAt, now time.Time) State {
	switch {
	case now.Before(beginAt):
		return StateNotStarted
	case now.After(endAt):
		return StateClosed
	case stock <= 0:
		return StateSoldOut
	default:
		return StateOpen
	}
}

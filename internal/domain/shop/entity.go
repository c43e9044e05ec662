package shop

import (
	"strings"

	"seckill-service/internal/pkg/errs"
)

var (
	ErrInvalidID    = errs.New("shop id must be positive")
	ErrEmptyName    = errs.New("shop name is required")
	ErrInvalidPrice = errs.New("average price must not be negative")
	ErrInvalidScore = errs.New("score must be between 0 and 50")
)

// Shop carries the fields the shop owner may edit.
type Shop struct {
	id       int64
	name     string
	typeID   int64
	address  string
	avgPrice int64
	score    int
}

func NewShop(id int64, name string, typeID int64, address string, avgPrice int64, score int) (*Shop, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if avgPrice < 0 {
		return nil, ErrInvalidPrice
	}
	// stored as tenths, 0.0 - 5.0
	if score < 0 || score > 50 {
		return nil, ErrInvalidScore
	}
	return &Shop{
		id:       id,
		name:     name,
		typeID:   typeID,
		address:  strings.TrimSpace(address),
		avgPrice: avgPrice,
		score:    score,
	}, nil
}

func (s *Shop) ID() int64       { return s.id }
func (s *Shop) Name() string    { return s.name }
func (s *Shop) TypeID() int64   { return s.typeID }
func (s *Shop) Address() string { return s.address }
func (s *Shop) AvgPrice() int64 { return s.avgPrice }
func (s *Shop) Score() int      { return s.score }

package order

import (
	"strconv"
	"time"

	"seckill-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidID        = errs.New("invalid order id")
	ErrInvalidUserID    = errs.New("user id is required")
	ErrInvalidVoucherID = errs.New("voucher id must be positive")
)

// ID is minted by the global id generator before the order is persisted.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, ErrInvalidID
	}
	return ID(v), nil
}

// Task is an admitted purchase waiting for durable persistence.
type Task struct {
	OrderID    ID
	UserID     uuid.UUID
	VoucherID  int64
	EnqueuedAt time.Time
	// admission log entry to acknowledge once the order row exists
	LogEntryID string
}

type VoucherOrder struct {
	id        ID
	userID    uuid.UUID
	voucherID int64
	createdAt time.Time
}

func NewVoucherOrder(id ID, userID uuid.UUID, voucherID int64, now time.Time) (*VoucherOrder, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if voucherID <= 0 {
		return nil, ErrInvalidVoucherID
	}
	return &VoucherOrder{
		id:        id,
		userID:    userID,
		voucherID: voucherID,
		createdAt: now,
	}, nil
}

func FromTask(task Task, now time.Time) (*VoucherOrder, error) {
	return NewVoucherOrder(task.OrderID, task.UserID, task.VoucherID, now)
}

func (o *VoucherOrder) ID() ID               { return o.id }
func (o *VoucherOrder) UserID() uuid.UUID    { return o.userID }
func (o *VoucherOrder) VoucherID() int64     { return o.voucherID }
func (o *VoucherOrder) CreatedAt() time.Time { return o.createdAt }

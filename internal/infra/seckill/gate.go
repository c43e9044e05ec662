package seckill

import (
	"context"
	"fmt"

	"seckill-service/internal/domain/voucher"
	"seckill-service/internal/infra/kv"
	"seckill-service/internal/pkg/clock"
	"seckill-service/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	codeAdmitted          int64 = 0
	codeStockInsufficient int64 = 1
	codeDuplicateOrder    int64 = 2
	codeNotStarted        int64 = 3
	codeEnded             int64 = 4
	codeNotLoaded         int64 = -1
)

// Window check, stock check, duplicate check, decrement and buyer marker run as one
// atomic step, so stock cannot go negative and a user is admitted at most once.
var admitScript = kv.NewScript(`
local stockKey = KEYS[1]
local buyersKey = KEYS[2]
local userId = ARGV[1]
local now = tonumber(ARGV[2])

if redis.call('exists', stockKey) == 0 then
	return -1
end

local fields = redis.call('hmget', stockKey, 'stock', 'begin_at', 'end_at')
local stock = tonumber(fields[1])
local beginAt = tonumber(fields[2])
local endAt = tonumber(fields[3])

if beginAt and now < beginAt then
	return 3
end
if endAt and now > endAt then
	return 4
end
if stock == nil or stock <= 0 then
	return 1
end
if redis.call('sismember', buyersKey, userId) == 1 then
	return 2
end

redis.call('hincrby', stockKey, 'stock', -1)
redis.call('sadd', buyersKey, userId)
return 0
`)

// Undo of a successful admission. Only restores stock when the user marker was present.
var revertScript = kv.NewScript(`
if redis.call('srem', KEYS[2], ARGV[1]) == 1 then
	redis.call('hincrby', KEYS[1], 'stock', 1)
	return 1
end
return 0
`)

// Loads the voucher only when no stock key exists, so a live sale is never reset.
var preloadIfAbsentScript = kv.NewScript(`
if redis.call('exists', KEYS[1]) == 1 then
	return 0
end
redis.call('hset', KEYS[1], 'stock', ARGV[1], 'begin_at', ARGV[2], 'end_at', ARGV[3])
return 1
`)

var ErrUnexpectedReply = errs.New("unexpected admission script reply")

type Gate struct {
	store kv.Store
	clock clock.Clock
}

func NewGate(store kv.Store, clk clock.Clock) *Gate {
	return &Gate{store: store, clock: clk}
}

// Preload publishes a voucher's stock and window to the fast path.
func (g *Gate) Preload(ctx context.Context, v *voucher.SeckillVoucher) error {
	return g.store.HSet(ctx, StockKey(v.ID()), map[string]any{
		"stock":    v.Stock(),
		"begin_at": v.BeginAt().UnixMilli(),
		"end_at":   v.EndAt().UnixMilli(),
	})
}

// PreloadIfAbsent reports whether it loaded the voucher. An already loaded
// voucher keeps its remaining stock and buyers.
func (g *Gate) PreloadIfAbsent(ctx context.Context, v *voucher.SeckillVoucher) (bool, error) {
	res, err := g.store.Eval(ctx, preloadIfAbsentScript,
		[]string{StockKey(v.ID())},
		v.Stock(), v.BeginAt().UnixMilli(), v.EndAt().UnixMilli(),
	)
	if err != nil {
		return false, err
	}
	loaded, ok := res.(int64)
	if !ok {
		return false, errs.Wrap(ErrUnexpectedReply, fmt.Sprintf("%T", res))
	}
	return loaded == 1, nil
}

// Admit returns RejectionNone when the user was admitted.
// voucher.ErrNotFound means the voucher was never preloaded.
func (g *Gate) Admit(ctx context.Context, voucherID int64, userID uuid.UUID) (voucher.Rejection, error) {
	res, err := g.store.Eval(ctx, admitScript,
		[]string{StockKey(voucherID), BuyersKey(voucherID)},
		userID.String(), g.clock.Now().UnixMilli(),
	)
	if err != nil {
		return voucher.RejectionNone, err
	}

	code, ok := res.(int64)
	if !ok {
		return voucher.RejectionNone, errs.Wrap(ErrUnexpectedReply, fmt.Sprintf("%T", res))
	}

	switch code {
	case codeAdmitted:
		return voucher.RejectionNone, nil
	case codeStockInsufficient:
		return voucher.RejectionStockInsufficient, nil
	case codeDuplicateOrder:
		return voucher.RejectionDuplicateOrder, nil
	case codeNotStarted, codeEnded:
		return voucher.RejectionWindowClosed, nil
	case codeNotLoaded:
		return voucher.RejectionNone, voucher.ErrNotFound
	default:
		return voucher.RejectionNone, errs.Wrap(ErrUnexpectedReply, fmt.Sprintf("code %d", code))
	}
}

// Revert compensates an admission whose order could not be handed to the persister.
func (g *Gate) Revert(ctx context.Context, voucherID int64, userID uuid.UUID) error {
	_, err := g.store.Eval(ctx, revertScript,
		[]string{StockKey(voucherID), BuyersKey(voucherID)},
		userID.String(),
	)
	return err
}

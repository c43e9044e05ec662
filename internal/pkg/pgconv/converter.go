package pgconv

import (
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrIDOutOfRange  = errors.New("id does not fit a BIGINT column")
	ErrIntOutOfRange = errors.New("value does not fit an INTEGER column")
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// Uint64ToInt8 maps a generated id onto a signed BIGINT column.
func Uint64ToInt8(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, ErrIDOutOfRange
	}
	// #nosec G115 -- range checked above
	return int64(v), nil
}

// IntToInt4 narrows a Go int for an INTEGER column.
func IntToInt4(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrIntOutOfRange
	}
	// #nosec G115 -- range checked above
	return int32(v), nil
}

func Int8ToUint64(v int64) uint64 {
	if v < 0 {
		return 0
	}
	// #nosec G115 -- negative values rejected above
	return uint64(v)
}

// IsNoRows checks if the error is a "no rows" error from pgx
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

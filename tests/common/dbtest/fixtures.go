//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestShop(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO shops (name, type_id, address, avg_price, score) VALUES ($1, 1, 'Test Street 1', 80, 45) RETURNING id",
		name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestVoucher(t *testing.T, db DBLike, shopID int64, stock int, beginAt, endAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO seckill_vouchers (shop_id, title, stock, begin_at, end_at) VALUES ($1, 'Test voucher', $2, $3, $4) RETURNING id",
		shopID, stock, beginAt, endAt).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountOrders(t *testing.T, db DBLike, voucherID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM voucher_orders WHERE voucher_id = $1", voucherID).Scan(&n)
	require.NoError(t, err)
	return n
}

func VoucherStock(t *testing.T, db DBLike, voucherID int64) int {
	t.Helper()

	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM seckill_vouchers WHERE id = $1", voucherID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// inserts the shop every e2e test can rely on
func SeedReferenceData(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), `
		INSERT INTO shops (id, name, type_id, address, avg_price, score) VALUES
		    (1, 'Reference Shop', 1, 'Main Street 1', 120, 47)
		ON CONFLICT (id) DO NOTHING;
		SELECT setval(pg_get_serial_sequence('shops', 'id'), GREATEST((SELECT max(id) FROM shops), 1));
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

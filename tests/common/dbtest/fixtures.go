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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches the bcrypt hash stored by CreateTestUser.
const TestPassword = "password123"

// DBLike is satisfied by both the pool and a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, username, role, branch string) uuid.UUID {
	t.Helper()

	var userID uuid.UUID
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO users (username, display_name, password_hash, role, branch, branch_address, branch_hours, branch_phone)
		VALUES ($1, $1, $2, $3, $4, 'Calle ' || $4 || ' 100', 'Lun a Vie 9 a 18', '1140000000')
		ON CONFLICT (username) DO UPDATE SET role = EXCLUDED.role, branch = EXCLUDED.branch
		RETURNING id`,
		username, testPasswordHash, role, branch).Scan(&userID)
	require.NoError(t, err)

	return userID
}

func CreateTestProduct(t *testing.T, db DBLike, code, description, unitPrice string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO products (code, description, unit_price) VALUES ($1, $2, $3::numeric)
		ON CONFLICT (code) DO UPDATE SET description = EXCLUDED.description, unit_price = EXCLUDED.unit_price`,
		code, description, unitPrice)
	require.NoError(t, err)
}

// inserts the catalog rows every suite expects
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (code, description, unit_price) VALUES
		    ('X1', 'Taladro percutor', 250.00),
		    ('A-100', 'Amoladora angular', 1000.00)
		ON CONFLICT (code) DO NOTHING;
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

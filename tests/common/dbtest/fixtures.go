//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateOpenEvent inserts an OPEN event whose sales window contains now.
func CreateOpenEvent(t *testing.T, db DBLike, title string) int64 {
	t.Helper()
	now := time.Now().UTC()
	return CreateEvent(t, db, title, "OPEN", now.Add(-time.Hour), now.Add(time.Hour))
}

func CreateEvent(t *testing.T, db DBLike, title, status string, openAt, closeAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO events (title, status, sales_open_at, sales_close_at) VALUES ($1, $2, $3, $4) RETURNING id",
		title, status, openAt, closeAt).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateSeats inserts one seat per price in zone A, numbered from 1.
func CreateSeats(t *testing.T, db DBLike, eventID int64, prices ...int64) []int64 {
	t.Helper()

	ids := make([]int64, len(prices))
	for i, price := range prices {
		err := db.QueryRow(context.Background(),
			"INSERT INTO seats (event_id, zone_code, seat_no, price) VALUES ($1, 'A', $2, $3) RETURNING id",
			eventID, fmt.Sprintf("A-%d", i+1), price).Scan(&ids[i])
		require.NoError(t, err)
	}
	return ids
}

// ExpireHold moves a hold group and its seats into the past.
func ExpireHold(t *testing.T, db DBLike, groupID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	past := time.Now().UTC().Add(-time.Second)
	_, err := db.Exec(ctx, "UPDATE hold_group_seats SET expires_at = $2 WHERE hold_group_id = $1", groupID, past)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "UPDATE hold_groups SET expires_at = $2 WHERE id = $1", groupID, past)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// tables in dependency order, children first
var ticketingTables = []string{
	"notification_jobs",
	"confirm_idempotencies",
	"booking_items",
	"bookings",
	"payment_txs",
	"hold_idempotencies",
	"hold_group_seats",
	"hold_groups",
	"seats",
	"events",
}

// ResetDB empties every ticketing table and restarts id sequences so each
// test sees the same ids.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(ticketingTables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("reset ticketing tables: %w", err)
	}
	return nil
}

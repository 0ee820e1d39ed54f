//go:build unit

package hold_test

import (
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/hold"
	"seat-hold-ticketing/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatSet(t *testing.T) {
	tests := []struct {
		name        string
		input       []int64
		wantIDs     []int64
		fingerprint string
		errIs       error
	}{
		{name: "sorted and deduplicated", input: []int64{90, 12, 35, 12}, wantIDs: []int64{12, 35, 90}, fingerprint: "12,35,90"},
		{name: "single seat", input: []int64{7}, wantIDs: []int64{7}, fingerprint: "7"},
		{name: "only duplicates", input: []int64{3, 3, 3}, wantIDs: []int64{3}, fingerprint: "3"},
		{name: "empty is rejected", input: []int64{}, errIs: errs.ErrInvalidSeatSet},
		{name: "nil is rejected", input: nil, errIs: errs.ErrInvalidSeatSet},
		{name: "non-positive id is rejected", input: []int64{0, 4}, errIs: errs.ErrInvalidSeatSet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := hold.NewSeatSet(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.wantIDs, set.IDs()); diff != "" {
				t.Errorf("IDs mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.fingerprint, set.Fingerprint())
			assert.Equal(t, len(tt.wantIDs), set.Len())
		})
	}

	t.Run("order independent fingerprint", func(t *testing.T) {
		a, err := hold.NewSeatSet([]int64{1, 2, 3})
		require.NoError(t, err)
		b, err := hold.NewSeatSet([]int64{3, 1, 2, 2})
		require.NoError(t, err)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		in := []int64{5, 1}
		_, err := hold.NewSeatSet(in)
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 1}, in)
	})
}

func TestNewIdempotencyKey(t *testing.T) {
	k, err := hold.NewIdempotencyKey(1, 2, "  abc  ")
	require.NoError(t, err)
	assert.Equal(t, hold.IdempotencyKey{UserID: 1, EventID: 2, Key: "abc"}, k)

	_, err = hold.NewIdempotencyKey(1, 2, "   ")
	require.ErrorIs(t, err, errs.ErrIdempotencyKeyRequired)
}

func TestIdempotencyRecord_Resolve(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	key := hold.IdempotencyKey{UserID: 1, EventID: 1, Key: "k"}

	pending := func(expiresAt time.Time) hold.IdempotencyRecord {
		return hold.IdempotencyRecord{Key: key, Fingerprint: "1,2", State: hold.Pending{ClaimID: uuid.New(), ExpiresAt: expiresAt}}
	}
	completed := hold.IdempotencyRecord{
		Key:         key,
		Fingerprint: "1,2",
		State:       hold.Completed{Result: hold.Result{EventID: 1, GroupID: uuid.New(), SeatCount: 2}},
	}

	tests := []struct {
		name        string
		record      hold.IdempotencyRecord
		fingerprint string
		want        hold.Decision
	}{
		{name: "different seat set conflicts even when completed", record: completed, fingerprint: "1,3", want: hold.DecisionConflict},
		{name: "different seat set conflicts when pending", record: pending(now.Add(time.Minute)), fingerprint: "2", want: hold.DecisionConflict},
		{name: "completed replays", record: completed, fingerprint: "1,2", want: hold.DecisionReplay},
		{name: "live pending is in progress", record: pending(now.Add(time.Second)), fingerprint: "1,2", want: hold.DecisionInProgress},
		{name: "pending expiring exactly now is reclaimable", record: pending(now), fingerprint: "1,2", want: hold.DecisionReclaim},
		{name: "stale pending is reclaimable", record: pending(now.Add(-time.Minute)), fingerprint: "1,2", want: hold.DecisionReclaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.Resolve(tt.fingerprint, now))
		})
	}
}

func TestGroup(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := hold.NewGroup(7, 3, now, hold.DefaultTTL)

	assert.NotEqual(t, uuid.Nil, g.ID)
	assert.Equal(t, now.Add(90*time.Second), g.ExpiresAt)
	assert.True(t, g.ActiveAt(now.Add(89*time.Second)))
	assert.False(t, g.ActiveAt(g.ExpiresAt))
	assert.True(t, g.OwnedBy(7, 3))
	assert.False(t, g.OwnedBy(8, 3))

	set, err := hold.NewSeatSet([]int64{2, 1})
	require.NoError(t, err)
	want := []hold.Seat{
		{EventID: 3, SeatID: 1, GroupID: g.ID, ExpiresAt: g.ExpiresAt},
		{EventID: 3, SeatID: 2, GroupID: g.ID, ExpiresAt: g.ExpiresAt},
	}
	if diff := cmp.Diff(want, g.Seats(set)); diff != "" {
		t.Errorf("Seats mismatch (-want +got):\n%s", diff)
	}
}

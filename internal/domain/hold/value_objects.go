package hold

import (
	"slices"
	"strconv"
	"strings"

	"seat-hold-ticketing/internal/pkg/errs"
)

// SeatSet is a deduplicated, ascending set of seat ids.
type SeatSet struct {
	ids []int64
}

func NewSeatSet(ids []int64) (SeatSet, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	if len(sorted) == 0 || sorted[0] <= 0 {
		return SeatSet{}, errs.ErrInvalidSeatSet
	}
	return SeatSet{ids: sorted}, nil
}

func (s SeatSet) IDs() []int64 {
	return slices.Clone(s.ids)
}

func (s SeatSet) Len() int {
	return len(s.ids)
}

// Fingerprint is the canonical, order-independent encoding of the set,
// e.g. "12,35,90".
func (s SeatSet) Fingerprint() string {
	parts := make([]string, len(s.ids))
	for i, id := range s.ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// IdempotencyKey scopes a client-supplied key to one user and event.
type IdempotencyKey struct {
	UserID  int64
	EventID int64
	Key     string
}

func NewIdempotencyKey(userID, eventID int64, key string) (IdempotencyKey, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return IdempotencyKey{}, errs.ErrIdempotencyKeyRequired
	}
	return IdempotencyKey{UserID: userID, EventID: eventID, Key: key}, nil
}

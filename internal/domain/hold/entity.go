package hold

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxSeatsPerUser bounds the seats one user may hold live for one event.
	MaxSeatsPerUser = 4
	DefaultTTL      = 90 * time.Second
)

// Group is one hold attempt. Its id is the hold token handed to the client.
type Group struct {
	ID        uuid.UUID
	UserID    int64
	EventID   int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

func NewGroup(userID, eventID int64, now time.Time, ttl time.Duration) Group {
	return Group{
		ID:        uuid.New(),
		UserID:    userID,
		EventID:   eventID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func (g Group) ActiveAt(now time.Time) bool {
	return g.ExpiresAt.After(now)
}

func (g Group) OwnedBy(userID, eventID int64) bool {
	return g.UserID == userID && g.EventID == eventID
}

// Seat binds one seat to a group until ExpiresAt. At most one row per
// (event, seat) exists regardless of expiry.
type Seat struct {
	EventID   int64
	SeatID    int64
	GroupID   uuid.UUID
	ExpiresAt time.Time
}

func (g Group) Seats(set SeatSet) []Seat {
	ids := set.IDs()
	seats := make([]Seat, len(ids))
	for i, id := range ids {
		seats[i] = Seat{EventID: g.EventID, SeatID: id, GroupID: g.ID, ExpiresAt: g.ExpiresAt}
	}
	return seats
}

// Result is what a completed hold returns, and what a replay returns verbatim.
type Result struct {
	EventID   int64
	GroupID   uuid.UUID
	SeatCount int
}

package hold

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyState is either Pending or Completed.
type IdempotencyState interface {
	isIdempotencyState()
}

// Pending marks a request that secured its key but has not finished.
// ClaimID identifies the request that owns the row so only it can complete
// or release it.
type Pending struct {
	ClaimID   uuid.UUID
	ExpiresAt time.Time
}

type Completed struct {
	Result Result
}

func (Pending) isIdempotencyState()   {}
func (Completed) isIdempotencyState() {}

type IdempotencyRecord struct {
	Key         IdempotencyKey
	Fingerprint string
	State       IdempotencyState
}

func NewPendingRecord(key IdempotencyKey, fingerprint string, now time.Time, ttl time.Duration) IdempotencyRecord {
	return IdempotencyRecord{
		Key:         key,
		Fingerprint: fingerprint,
		State:       Pending{ClaimID: uuid.New(), ExpiresAt: now.Add(ttl)},
	}
}

type Decision int

const (
	// DecisionConflict: same key, different seat set.
	DecisionConflict Decision = iota
	// DecisionReplay: return the stored result with no side effects.
	DecisionReplay
	// DecisionInProgress: another request owns a live pending row.
	DecisionInProgress
	// DecisionReclaim: the pending row is stale and may be deleted.
	DecisionReclaim
)

func (d Decision) String() string {
	switch d {
	case DecisionConflict:
		return "conflict"
	case DecisionReplay:
		return "replay"
	case DecisionInProgress:
		return "in_progress"
	case DecisionReclaim:
		return "reclaim"
	default:
		return "unknown"
	}
}

// Resolve applies the replay rules for an existing record against a new
// request carrying fingerprint at now.
func (r IdempotencyRecord) Resolve(fingerprint string, now time.Time) Decision {
	if r.Fingerprint != fingerprint {
		return DecisionConflict
	}
	switch s := r.State.(type) {
	case Completed:
		return DecisionReplay
	case Pending:
		if s.ExpiresAt.After(now) {
			return DecisionInProgress
		}
		return DecisionReclaim
	default:
		return DecisionConflict
	}
}

func (r IdempotencyRecord) Pending() (Pending, bool) {
	p, ok := r.State.(Pending)
	return p, ok
}

func (r IdempotencyRecord) Completed() (Completed, bool) {
	c, ok := r.State.(Completed)
	return c, ok
}

package event

import "time"

type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

func (s Status) String() string {
	return string(s)
}

type Event struct {
	id           int64
	title        string
	status       Status
	salesOpenAt  time.Time
	salesCloseAt time.Time
}

func Reconstruct(id int64, title string, status Status, salesOpenAt, salesCloseAt time.Time) *Event {
	return &Event{
		id:           id,
		title:        title,
		status:       status,
		salesOpenAt:  salesOpenAt,
		salesCloseAt: salesCloseAt,
	}
}

// OnSale reports whether seats may be held or confirmed at now:
// the event is OPEN and sales_open_at <= now < sales_close_at.
func (e *Event) OnSale(now time.Time) bool {
	if e.status != StatusOpen {
		return false
	}
	return !e.salesOpenAt.After(now) && now.Before(e.salesCloseAt)
}

func (e *Event) ID() int64               { return e.id }
func (e *Event) Title() string           { return e.title }
func (e *Event) Status() Status          { return e.status }
func (e *Event) SalesOpenAt() time.Time  { return e.salesOpenAt }
func (e *Event) SalesCloseAt() time.Time { return e.salesCloseAt }

//go:build unit

package event_test

import (
	"testing"
	"time"

	"seat-hold-ticketing/internal/domain/event"

	"github.com/stretchr/testify/assert"
)

func TestEvent_OnSale(t *testing.T) {
	open := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	closeAt := open.Add(2 * time.Hour)

	tests := []struct {
		name   string
		status event.Status
		now    time.Time
		want   bool
	}{
		{name: "open at exactly sales_open_at", status: event.StatusOpen, now: open, want: true},
		{name: "open within window", status: event.StatusOpen, now: open.Add(time.Hour), want: true},
		{name: "before window", status: event.StatusOpen, now: open.Add(-time.Second), want: false},
		{name: "at sales_close_at is closed", status: event.StatusOpen, now: closeAt, want: false},
		{name: "draft inside window", status: event.StatusDraft, now: open.Add(time.Minute), want: false},
		{name: "closed inside window", status: event.StatusClosed, now: open.Add(time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := event.Reconstruct(1, "concert", tt.status, open, closeAt)
			assert.Equal(t, tt.want, e.OnSale(tt.now))
		})
	}
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTicketPriority(t *testing.T) {
	cases := []struct {
		in   string
		want TicketPriority
		ok   bool
	}{
		{"low", TicketPriorityLow, true},
		{"URGENT", TicketPriorityUrgent, true},
		{"Medium", TicketPriorityMedium, true},
		{"  high ", TicketPriorityHigh, true},
		{"", "", false},
		{"critical", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseTicketPriority(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseOrderStatus(t *testing.T) {
	got, ok := ParseOrderStatus("shipped")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, got)

	got, ok = ParseOrderStatus("Refunded")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusRefunded, got)

	_, ok = ParseOrderStatus("returned")
	assert.False(t, ok)
}

func TestParseTicketStatus(t *testing.T) {
	got, ok := ParseTicketStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, TicketStatusInProgress, got)

	_, ok = ParseTicketStatus("archived")
	assert.False(t, ok)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 6, 26, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2025-06-26", FormatDate(ts))
}

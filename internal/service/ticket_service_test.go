package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/events"
	"github.com/spec-kit/customer-service/internal/seed"
	"github.com/spec-kit/customer-service/internal/store"
)

func newTicketFixture(t *testing.T) (*TicketService, *store.Store, *recordingDispatcher) {
	t.Helper()
	s := store.New()
	seed.Load(s)
	d := &recordingDispatcher{}
	svc := NewTicketService(TicketDependencies{Store: s, Dispatcher: d, Now: fixedNow})
	return svc, s, d
}

func TestCreateTicket(t *testing.T) {
	svc, s, d := newTicketFixture(t)

	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CustomerID:  "CUST-456",
		Subject:     "Late delivery",
		Description: "Order has not arrived yet",
		Priority:    "high",
	})
	require.NoError(t, err)

	// seeded TKT-001 exists, so the counter continues at 002
	assert.Equal(t, "TKT-002", ticket.ID)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityHigh, ticket.Priority)
	assert.Nil(t, ticket.AgentAssigned)
	assert.Equal(t, "jane.smith@email.com", ticket.CustomerEmail)
	assert.Equal(t, "Jane Smith", ticket.CustomerName)
	assert.Equal(t, "2025-07-01", ticket.CreatedDate)
	assert.Equal(t, ticket.CreatedDate, ticket.LastUpdated)

	stored, ok := s.Ticket("TKT-002")
	require.True(t, ok)
	assert.Equal(t, *ticket, stored)
	assert.Len(t, d.byType(events.EventTicketCreated), 1)
}

func TestCreateTicketUnknownCustomer(t *testing.T) {
	svc, s, d := newTicketFixture(t)
	before := s.TicketCount()

	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CustomerID:  "CUST-999",
		Subject:     "x",
		Description: "y",
	})
	requireCode(t, err, "NOT_FOUND")
	assert.Equal(t, before, s.TicketCount())
	assert.Empty(t, d.byType(events.EventTicketCreated))
}

func TestCreateTicketPriorityCaseInsensitive(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	for _, raw := range []string{"URGENT", "urgent", "Urgent", "uRgEnT"} {
		ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
			CustomerID:  "CUST-123",
			Subject:     "s",
			Description: "d",
			Priority:    raw,
		})
		require.NoError(t, err, "priority %q", raw)
		assert.Equal(t, domain.TicketPriorityUrgent, ticket.Priority)
	}
}

func TestCreateTicketDefaultPriority(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CustomerID:  "CUST-123",
		Subject:     "s",
		Description: "d",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TicketPriorityMedium, ticket.Priority)
}

func TestCreateTicketInvalidPriority(t *testing.T) {
	svc, s, _ := newTicketFixture(t)
	before := s.TicketCount()

	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CustomerID:  "CUST-123",
		Subject:     "s",
		Description: "d",
		Priority:    "critical",
	})
	requireCode(t, err, "VALIDATION_FAILED")
	assert.Equal(t, before, s.TicketCount())
}

func TestCreateTicketKeepsDanglingOrderReference(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	orderID := "ORD-404"
	ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		CustomerID:  "CUST-123",
		Subject:     "s",
		Description: "d",
		OrderID:     &orderID,
	})
	require.NoError(t, err)
	require.NotNil(t, ticket.OrderID)
	assert.Equal(t, "ORD-404", *ticket.OrderID)
}

func TestCreateTicketSequentialIDs(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	for i, want := range []string{"TKT-002", "TKT-003", "TKT-004"} {
		ticket, err := svc.CreateTicket(context.Background(), TicketCreateInput{
			CustomerID:  "CUST-123",
			Subject:     "s",
			Description: "d",
		})
		require.NoError(t, err, "creation %d", i)
		assert.Equal(t, want, ticket.ID)
	}
}

func TestGetTicketStatus(t *testing.T) {
	svc, _, _ := newTicketFixture(t)

	ticket, err := svc.GetTicketStatus(context.Background(), "TKT-001")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityHigh, ticket.Priority)
	assert.Nil(t, ticket.AgentAssigned)
	require.NotNil(t, ticket.OrderID)
	assert.Equal(t, "ORD-001", *ticket.OrderID)

	_, err = svc.GetTicketStatus(context.Background(), "TKT-404")
	requireCode(t, err, "NOT_FOUND")
}

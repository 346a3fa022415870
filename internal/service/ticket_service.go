package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/events"
	"github.com/spec-kit/customer-service/internal/store"
	"github.com/spec-kit/customer-service/pkg/util"
)

// TicketService handles support ticket creation and reads. Tickets are born
// Open and unassigned; no operation here advances their status.
type TicketService struct {
	store      *store.Store
	dispatcher events.Dispatcher
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.Store
	Dispatcher events.Dispatcher
	Now        func() time.Time
}

// TicketCreateInput describes ticket creation payload. Priority is the raw
// caller-supplied name, matched case-insensitively; empty means medium.
// OrderID is stored as given, without checking the order exists.
type TicketCreateInput struct {
	CustomerID  string
	Subject     string
	Description string
	Priority    string
	OrderID     *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &TicketService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		now:        now,
	}
}

// CreateTicket validates the customer and priority, then assigns the next
// sequential ticket ID and stores the ticket. The customer's email and name
// are snapshotted onto the ticket.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	customer, ok := s.store.Customer(input.CustomerID)
	if !ok {
		return nil, util.NewNotFound("customer", map[string]any{"customer_id": input.CustomerID})
	}

	raw := input.Priority
	if raw == "" {
		raw = string(domain.TicketPriorityMedium)
	}
	priority, ok := domain.ParseTicketPriority(raw)
	if !ok {
		return nil, util.NewValidationError("invalid priority", map[string]any{
			"priority": input.Priority,
			"allowed":  []domain.TicketPriority{domain.TicketPriorityLow, domain.TicketPriorityMedium, domain.TicketPriorityHigh, domain.TicketPriorityUrgent},
		})
	}

	date := domain.FormatDate(s.now())
	ticket := s.store.CreateTicket(func(id string) domain.Ticket {
		return domain.Ticket{
			CustomerID:    customer.ID,
			CustomerEmail: customer.Email,
			CustomerName:  customer.Name,
			Subject:       strings.TrimSpace(input.Subject),
			Description:   strings.TrimSpace(input.Description),
			Status:        domain.TicketStatusOpen,
			Priority:      priority,
			CreatedDate:   date,
			LastUpdated:   date,
			OrderID:       input.OrderID,
		}
	})

	s.publishEvent(ctx, events.Event{
		Type:       events.EventTicketCreated,
		EntityID:   ticket.ID,
		CustomerID: ticket.CustomerID,
		Payload: events.TicketCreatedPayload{
			Subject:       ticket.Subject,
			Priority:      ticket.Priority,
			OrderID:       ticket.OrderID,
			CustomerEmail: ticket.CustomerEmail,
		},
	})
	return &ticket, nil
}

// GetTicketStatus returns the ticket as stored. Pure read, no guard.
func (s *TicketService) GetTicketStatus(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, ok := s.store.Ticket(ticketID)
	if !ok {
		return nil, util.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
	}
	return &ticket, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

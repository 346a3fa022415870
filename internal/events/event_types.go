package events

import (
	"time"

	"github.com/spec-kit/customer-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCancelled         EventType = "order_cancelled"
	EventOrderRefunded          EventType = "order_refunded"
	EventShippingAddressUpdated EventType = "shipping_address_updated"
	EventTicketCreated          EventType = "ticket_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EntityID   string      `json:"entity_id"`
	CustomerID string      `json:"customer_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// OrderCancelledPayload payload.
type OrderCancelledPayload struct {
	Reason        string  `json:"reason"`
	Total         float64 `json:"total"`
	CustomerEmail string  `json:"customer_email"`
}

// OrderRefundedPayload payload.
type OrderRefundedPayload struct {
	Amount         float64 `json:"amount"`
	Classification string  `json:"classification"`
	Reason         string  `json:"reason"`
	CustomerEmail  string  `json:"customer_email"`
}

// ShippingAddressUpdatedPayload payload.
type ShippingAddressUpdatedPayload struct {
	PreviousAddress string `json:"previous_address"`
	NewAddress      string `json:"new_address"`
	CustomerEmail   string `json:"customer_email"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Subject       string                `json:"subject"`
	Priority      domain.TicketPriority `json:"priority"`
	OrderID       *string               `json:"order_id,omitempty"`
	CustomerEmail string                `json:"customer_email"`
}

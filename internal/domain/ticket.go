package domain

import "strings"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ParseTicketStatus matches a status name case-insensitively.
func ParseTicketStatus(s string) (TicketStatus, bool) {
	switch TicketStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TicketStatusOpen:
		return TicketStatusOpen, true
	case TicketStatusInProgress:
		return TicketStatusInProgress, true
	case TicketStatusResolved:
		return TicketStatusResolved, true
	case TicketStatusClosed:
		return TicketStatusClosed, true
	}
	return "", false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
	TicketPriorityUrgent TicketPriority = "URGENT"
)

// ParseTicketPriority matches a priority name case-insensitively.
func ParseTicketPriority(s string) (TicketPriority, bool) {
	switch TicketPriority(strings.ToUpper(strings.TrimSpace(s))) {
	case TicketPriorityLow:
		return TicketPriorityLow, true
	case TicketPriorityMedium:
		return TicketPriorityMedium, true
	case TicketPriorityHigh:
		return TicketPriorityHigh, true
	case TicketPriorityUrgent:
		return TicketPriorityUrgent, true
	}
	return "", false
}

// Ticket is the aggregate for support requests. CustomerEmail and
// CustomerName are snapshots taken at creation. OrderID is a weak reference:
// it is stored as given and never validated against the order set, so a
// dangling reference is tolerated.
type Ticket struct {
	ID            string
	CustomerID    string
	CustomerEmail string
	CustomerName  string
	Subject       string
	Description   string
	Status        TicketStatus
	Priority      TicketPriority
	CreatedDate   string
	LastUpdated   string
	AgentAssigned *string
	OrderID       *string
}

package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spec-kit/customer-service/internal/domain"
)

// ErrNotFound is returned by lookups and updates for unknown identifiers.
var ErrNotFound = errors.New("entity not found")

// Store is the in-memory holder of all customer, order, and ticket records.
// It is created at process start and owns the three entity maps exclusively;
// services hold a reference to it instead of reaching for ambient globals.
//
// Every read-validate-write sequence runs under the write lock, so a guard
// check and the mutation it protects can never interleave with a concurrent
// mutation of the same entity. Lookups return copies.
type Store struct {
	mu          sync.RWMutex
	customers   map[string]domain.Customer
	customerIDs []string
	orders      map[string]domain.Order
	tickets     map[string]domain.Ticket
	ticketSeq   int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		customers: make(map[string]domain.Customer),
		orders:    make(map[string]domain.Order),
		tickets:   make(map[string]domain.Ticket),
	}
}

// Customer looks up a customer by ID.
func (s *Store) Customer(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	return c, ok
}

// Order looks up an order by ID.
func (s *Store) Order(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// Ticket looks up a ticket by ID.
func (s *Store) Ticket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tickets[id]
	return t, ok
}

// PutCustomer inserts or overwrites a customer record.
func (s *Store) PutCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.customers[c.ID]; !exists {
		s.customerIDs = append(s.customerIDs, c.ID)
	}
	s.customers[c.ID] = c
}

// PutOrder inserts or overwrites an order record.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

// PutTicket inserts or overwrites a ticket record. The sequential ticket
// counter is advanced past any seeded ordinal so later CreateTicket calls
// never collide with pre-loaded IDs.
func (s *Store) PutTicket(t domain.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets[t.ID] = t
	if n, ok := ticketOrdinal(t.ID); ok && n > s.ticketSeq {
		s.ticketSeq = n
	}
}

// Customers returns all customers in insertion order. Alternate-key searches
// scan this slice, so first-match semantics are deterministic.
func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Customer, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		out = append(out, s.customers[id])
	}
	return out
}

// Orders returns a snapshot of all orders.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out
}

// Tickets returns a snapshot of all tickets.
func (s *Store) Tickets() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out
}

// TicketCount reports the number of stored tickets.
func (s *Store) TicketCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}

// UpdateOrder runs mutate on the stored order under the write lock. The
// callback receives a copy; the copy is committed only when mutate returns
// nil, so a rejected precondition leaves the stored entity byte-for-byte
// unchanged. Returns the committed order state.
func (s *Store) UpdateOrder(id string, mutate func(*domain.Order) error) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	updated := current
	if err := mutate(&updated); err != nil {
		return domain.Order{}, err
	}
	s.orders[id] = updated
	return updated, nil
}

// CreateTicket assigns the next sequential ticket ID and inserts the ticket
// built for it, atomically with respect to concurrent creation.
func (s *Store) CreateTicket(build func(id string) domain.Ticket) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticketSeq++
	id := fmt.Sprintf("TKT-%03d", s.ticketSeq)
	t := build(id)
	t.ID = id
	s.tickets[id] = t
	return t
}

func ticketOrdinal(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "TKT-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

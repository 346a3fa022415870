package service

import (
	"context"
	"sort"
	"strings"

	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/store"
	"github.com/spec-kit/customer-service/pkg/util"
)

// recentOrdersInSearch caps the order history attached to a search hit.
const recentOrdersInSearch = 3

// CustomerService resolves customers by alternate keys and retrieves order
// history. Email and phone lookups are linear scans over the customer set in
// insertion order; the store maintains no secondary indexes.
type CustomerService struct {
	store *store.Store
}

// CustomerSearchInput carries the optional search keys. At least one must be
// present.
type CustomerSearchInput struct {
	Email      string
	CustomerID string
	Phone      string
}

// CustomerSearchResult is a resolved customer plus their most recent orders.
type CustomerSearchResult struct {
	Customer     domain.Customer
	RecentOrders []domain.Order
}

// CustomerOrdersResult is a page of a customer's order history. TotalCount is
// the full number of matching orders regardless of the page size.
type CustomerOrdersResult struct {
	Customer   domain.Customer
	TotalCount int
	Orders     []domain.Order
}

// NewCustomerService constructs the service.
func NewCustomerService(s *store.Store) *CustomerService {
	return &CustomerService{store: s}
}

// SearchCustomer resolves a customer by ID, email, or phone. An exact ID
// match wins; otherwise the first customer in insertion order whose email
// matches case-insensitively or whose phone matches exactly is returned.
func (s *CustomerService) SearchCustomer(ctx context.Context, input CustomerSearchInput) (*CustomerSearchResult, error) {
	if input.Email == "" && input.CustomerID == "" && input.Phone == "" {
		return nil, util.NewValidationError("provide at least one of email, customer_id, phone", nil)
	}

	var customer *domain.Customer
	if input.CustomerID != "" {
		if c, ok := s.store.Customer(input.CustomerID); ok {
			customer = &c
		}
	}
	if customer == nil {
		for _, c := range s.store.Customers() {
			if (input.Email != "" && strings.EqualFold(c.Email, input.Email)) ||
				(input.Phone != "" && c.Phone == input.Phone) {
				customer = &c
				break
			}
		}
	}
	if customer == nil {
		return nil, util.NewNotFound("customer", nil)
	}

	recent := s.ordersForCustomer(customer.ID)
	if len(recent) > recentOrdersInSearch {
		recent = recent[:recentOrdersInSearch]
	}
	return &CustomerSearchResult{Customer: *customer, RecentOrders: recent}, nil
}

// GetCustomerOrders returns the customer's order count and up to limit most
// recent orders. A non-positive limit yields an empty page while the count
// still reflects every order.
func (s *CustomerService) GetCustomerOrders(ctx context.Context, customerID string, limit int) (*CustomerOrdersResult, error) {
	customer, ok := s.store.Customer(customerID)
	if !ok {
		return nil, util.NewNotFound("customer", map[string]any{"customer_id": customerID})
	}

	orders := s.ordersForCustomer(customerID)
	total := len(orders)
	if limit < 0 {
		limit = 0
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return &CustomerOrdersResult{Customer: customer, TotalCount: total, Orders: orders}, nil
}

// ordersForCustomer returns the customer's orders sorted by order date
// descending. Dates are ISO strings, so string comparison is chronological;
// the stable sort keeps iteration order for ties.
func (s *CustomerService) ordersForCustomer(customerID string) []domain.Order {
	var orders []domain.Order
	for _, o := range s.store.Orders() {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate > orders[j].OrderDate
	})
	return orders
}

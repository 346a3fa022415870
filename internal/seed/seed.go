// Package seed loads the built-in demo dataset. The same fixtures back the
// development binary and the service tests.
package seed

import (
	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/store"
)

// Load inserts the demo customers, orders, and one open ticket.
func Load(s *store.Store) {
	trk := "TRK123456789"

	s.PutCustomer(domain.Customer{
		ID:               "CUST-123",
		Name:             "John Doe",
		Email:            "john.doe@email.com",
		Phone:            "+1-555-0123",
		RegistrationDate: "2024-01-15",
		LoyaltyTier:      domain.LoyaltyTierGold,
		TotalOrders:      15,
		TotalSpent:       5999.85,
	})
	s.PutCustomer(domain.Customer{
		ID:               "CUST-456",
		Name:             "Jane Smith",
		Email:            "jane.smith@email.com",
		Phone:            "+1-555-0456",
		RegistrationDate: "2024-03-22",
		LoyaltyTier:      domain.LoyaltyTierSilver,
		TotalOrders:      8,
		TotalSpent:       2799.92,
	})

	s.PutOrder(domain.Order{
		ID:            "ORD-001",
		CustomerID:    "CUST-123",
		CustomerEmail: "john.doe@email.com",
		CustomerName:  "John Doe",
		Items: []domain.LineItem{
			{Product: "Laptop", Quantity: 1, UnitPrice: 999.99},
			{Product: "Mouse", Quantity: 1, UnitPrice: 29.99},
		},
		Total:             1029.98,
		Status:            domain.OrderStatusShipped,
		OrderDate:         "2025-06-20",
		TrackingNumber:    &trk,
		EstimatedDelivery: "2025-06-28",
		ShippingAddress:   "123 Main St, Anytown, ST 12345",
	})
	s.PutOrder(domain.Order{
		ID:            "ORD-002",
		CustomerID:    "CUST-456",
		CustomerEmail: "jane.smith@email.com",
		CustomerName:  "Jane Smith",
		Items: []domain.LineItem{
			{Product: "Smartphone", Quantity: 1, UnitPrice: 699.99},
		},
		Total:             699.99,
		Status:            domain.OrderStatusProcessing,
		OrderDate:         "2025-06-25",
		EstimatedDelivery: "2025-06-30",
		ShippingAddress:   "456 Oak Ave, Another City, ST 67890",
	})

	ord := "ORD-001"
	s.PutTicket(domain.Ticket{
		ID:            "TKT-001",
		CustomerID:    "CUST-123",
		CustomerEmail: "john.doe@email.com",
		CustomerName:  "John Doe",
		Subject:       "Damaged item received",
		Description:   "The laptop I received has a crack on the screen",
		Status:        domain.TicketStatusOpen,
		Priority:      domain.TicketPriorityHigh,
		CreatedDate:   "2025-06-26",
		LastUpdated:   "2025-06-26",
		OrderID:       &ord,
	})
}

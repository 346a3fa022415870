package domain

import (
	"strings"
	"time"
)

// DateLayout is the ISO date format used for every stored date. Lexicographic
// comparison of these strings equals chronological order, which the order
// sorting in the customer service relies on.
const DateLayout = "2006-01-02"

// FormatDate renders a timestamp as a stored date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// OrderStatus enumerates lifecycle states for orders.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

// ParseOrderStatus matches a status name case-insensitively.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusProcessing:
		return OrderStatusProcessing, true
	case OrderStatusShipped:
		return OrderStatusShipped, true
	case OrderStatusDelivered:
		return OrderStatusDelivered, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	case OrderStatusRefunded:
		return OrderStatusRefunded, true
	}
	return "", false
}

// LineItem is a single ordered product line. Quantity is at least 1 and
// UnitPrice is non-negative in all seeded and created data.
type LineItem struct {
	Product   string
	Quantity  int
	UnitPrice float64
}

// Order is the aggregate for customer orders. CustomerEmail and CustomerName
// are snapshots captured at order time, not live joins against the customer
// record. Total is the authoritative amount; it is never recomputed from
// Items. The pointer fields stay nil until the transition that sets them, and
// once set no other operation clears them.
type Order struct {
	ID                 string
	CustomerID         string
	CustomerEmail      string
	CustomerName       string
	Items              []LineItem
	Total              float64
	Status             OrderStatus
	OrderDate          string
	TrackingNumber     *string
	EstimatedDelivery  string
	ShippingAddress    string
	CancellationReason *string
	CancellationDate   *string
	RefundAmount       *float64
	RefundReason       *string
	RefundDate         *string
	AddressUpdatedDate *string
}

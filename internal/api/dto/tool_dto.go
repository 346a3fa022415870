package dto

import (
	"github.com/spec-kit/customer-service/internal/domain"
)

// GetOrderStatusRequest payload.
type GetOrderStatusRequest struct {
	OrderID string `json:"order_id"`
}

// CancelOrderRequest payload. Reason defaults to "Customer request".
type CancelOrderRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

// SearchCustomerRequest payload. At least one field must be set.
type SearchCustomerRequest struct {
	Email      string `json:"email"`
	CustomerID string `json:"customer_id"`
	Phone      string `json:"phone"`
}

// CreateTicketRequest payload. Priority defaults to medium.
type CreateTicketRequest struct {
	CustomerID  string  `json:"customer_id"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	OrderID     *string `json:"order_id,omitempty"`
}

// GetTicketStatusRequest payload.
type GetTicketStatusRequest struct {
	TicketID string `json:"ticket_id"`
}

// ProcessRefundRequest payload. A nil amount means the full order total.
type ProcessRefundRequest struct {
	OrderID string   `json:"order_id"`
	Amount  *float64 `json:"amount,omitempty"`
	Reason  string   `json:"reason"`
}

// UpdateShippingAddressRequest payload.
type UpdateShippingAddressRequest struct {
	OrderID    string `json:"order_id"`
	NewAddress string `json:"new_address"`
}

// GetCustomerOrdersRequest payload. A nil limit means 10.
type GetCustomerOrdersRequest struct {
	CustomerID string `json:"customer_id"`
	Limit      *int   `json:"limit,omitempty"`
}

// LineItemResponse is one ordered product line.
type LineItemResponse struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderResponse provides full order info.
type OrderResponse struct {
	ID                 string             `json:"order_id"`
	CustomerID         string             `json:"customer_id"`
	CustomerName       string             `json:"customer_name"`
	CustomerEmail      string             `json:"customer_email"`
	Items              []LineItemResponse `json:"items"`
	Total              float64            `json:"total"`
	Status             domain.OrderStatus `json:"status"`
	OrderDate          string             `json:"order_date"`
	TrackingNumber     *string            `json:"tracking_number,omitempty"`
	EstimatedDelivery  string             `json:"estimated_delivery"`
	ShippingAddress    string             `json:"shipping_address"`
	CancellationReason *string            `json:"cancellation_reason,omitempty"`
	CancellationDate   *string            `json:"cancellation_date,omitempty"`
	RefundAmount       *float64           `json:"refund_amount,omitempty"`
	RefundReason       *string            `json:"refund_reason,omitempty"`
	RefundDate         *string            `json:"refund_date,omitempty"`
	AddressUpdatedDate *string            `json:"address_updated_date,omitempty"`
}

// OrderSummary is the short form used in order history listings.
type OrderSummary struct {
	ID        string             `json:"order_id"`
	OrderDate string             `json:"order_date"`
	Status    domain.OrderStatus `json:"status"`
	Total     float64            `json:"total"`
}

// CancelOrderResponse reports a cancellation outcome. AlreadyCancelled marks
// the idempotent no-op case.
type CancelOrderResponse struct {
	Order            OrderResponse `json:"order"`
	AlreadyCancelled bool          `json:"already_cancelled"`
}

// RefundResponse reports a processed refund.
type RefundResponse struct {
	Order          OrderResponse `json:"order"`
	RefundAmount   float64       `json:"refund_amount"`
	OriginalTotal  float64       `json:"original_total"`
	Classification string        `json:"classification"`
}

// UpdateAddressResponse reports an address change, including the address it
// replaced.
type UpdateAddressResponse struct {
	Order           OrderResponse `json:"order"`
	PreviousAddress string        `json:"previous_address"`
	NewAddress      string        `json:"new_address"`
}

// TicketResponse provides full ticket info.
type TicketResponse struct {
	ID            string                `json:"ticket_id"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	Subject       string                `json:"subject"`
	Description   string                `json:"description"`
	Status        domain.TicketStatus   `json:"status"`
	Priority      domain.TicketPriority `json:"priority"`
	CreatedDate   string                `json:"created_date"`
	LastUpdated   string                `json:"last_updated"`
	AgentAssigned *string               `json:"agent_assigned,omitempty"`
	OrderID       *string               `json:"order_id,omitempty"`
}

// CustomerResponse provides customer profile info.
type CustomerResponse struct {
	ID               string             `json:"customer_id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	RegistrationDate string             `json:"registration_date"`
	LoyaltyTier      domain.LoyaltyTier `json:"loyalty_tier"`
	TotalOrders      int                `json:"total_orders"`
	TotalSpent       float64            `json:"total_spent"`
}

// SearchCustomerResponse is a resolved customer with recent order history.
type SearchCustomerResponse struct {
	Customer     CustomerResponse `json:"customer"`
	RecentOrders []OrderSummary   `json:"recent_orders"`
}

// CustomerOrdersResponse is a page of a customer's order history.
type CustomerOrdersResponse struct {
	Customer   CustomerResponse `json:"customer"`
	TotalCount int              `json:"total_count"`
	Showing    []OrderSummary   `json:"showing"`
}

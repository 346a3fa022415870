package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/customer-service/internal/api/dto"
	"github.com/spec-kit/customer-service/internal/service"
	"github.com/spec-kit/customer-service/pkg/util"
)

// defaultOrderHistoryLimit is the page size when get_customer_orders is
// called without a limit.
const defaultOrderHistoryLimit = 10

// ToolsHandler exposes each customer-service operation as a tool endpoint.
// Handlers only decode arguments and encode results; all guard and lifecycle
// logic lives in the services.
type ToolsHandler struct {
	orders    *service.OrderService
	tickets   *service.TicketService
	customers *service.CustomerService
}

// NewToolsHandler constructs handler.
func NewToolsHandler(orders *service.OrderService, tickets *service.TicketService, customers *service.CustomerService) *ToolsHandler {
	return &ToolsHandler{orders: orders, tickets: tickets, customers: customers}
}

// GetOrderStatus POST /tools/get_order_status.
func (h *ToolsHandler) GetOrderStatus(c *fiber.Ctx) error {
	var req dto.GetOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.OrderID == "" {
		return util.NewValidationError("order_id required", nil)
	}
	order, err := h.orders.GetOrderStatus(c.UserContext(), req.OrderID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order)})
}

// CancelOrder POST /tools/cancel_order.
func (h *ToolsHandler) CancelOrder(c *fiber.Ctx) error {
	var req dto.CancelOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.OrderID == "" {
		return util.NewValidationError("order_id required", nil)
	}
	result, err := h.orders.CancelOrder(c.UserContext(), req.OrderID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CancelOrderResponse{
		Order:            orderResponse(&result.Order),
		AlreadyCancelled: result.AlreadyCancelled,
	}})
}

// ProcessRefund POST /tools/process_refund.
func (h *ToolsHandler) ProcessRefund(c *fiber.Ctx) error {
	var req dto.ProcessRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.OrderID == "" {
		return util.NewValidationError("order_id required", nil)
	}
	result, err := h.orders.ProcessRefund(c.UserContext(), req.OrderID, req.Amount, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RefundResponse{
		Order:          orderResponse(&result.Order),
		RefundAmount:   result.Amount,
		OriginalTotal:  result.Order.Total,
		Classification: result.Classification,
	}})
}

// UpdateShippingAddress POST /tools/update_shipping_address.
func (h *ToolsHandler) UpdateShippingAddress(c *fiber.Ctx) error {
	var req dto.UpdateShippingAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.OrderID == "" || req.NewAddress == "" {
		return util.NewValidationError("order_id, new_address required", nil)
	}
	result, err := h.orders.UpdateShippingAddress(c.UserContext(), req.OrderID, req.NewAddress)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UpdateAddressResponse{
		Order:           orderResponse(&result.Order),
		PreviousAddress: result.PreviousAddress,
		NewAddress:      result.Order.ShippingAddress,
	}})
}

// CreateSupportTicket POST /tools/create_support_ticket.
func (h *ToolsHandler) CreateSupportTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.CustomerID == "" || req.Subject == "" || req.Description == "" {
		return util.NewValidationError("customer_id, subject, description required", nil)
	}
	ticket, err := h.tickets.CreateTicket(c.UserContext(), service.TicketCreateInput{
		CustomerID:  req.CustomerID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
		OrderID:     req.OrderID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// GetTicketStatus POST /tools/get_ticket_status.
func (h *ToolsHandler) GetTicketStatus(c *fiber.Ctx) error {
	var req dto.GetTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.TicketID == "" {
		return util.NewValidationError("ticket_id required", nil)
	}
	ticket, err := h.tickets.GetTicketStatus(c.UserContext(), req.TicketID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketResponse(ticket)})
}

// SearchCustomer POST /tools/search_customer.
func (h *ToolsHandler) SearchCustomer(c *fiber.Ctx) error {
	var req dto.SearchCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	result, err := h.customers.SearchCustomer(c.UserContext(), service.CustomerSearchInput{
		Email:      req.Email,
		CustomerID: req.CustomerID,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SearchCustomerResponse{
		Customer:     customerResponse(result.Customer),
		RecentOrders: orderSummaries(result.RecentOrders),
	}})
}

// GetCustomerOrders POST /tools/get_customer_orders.
func (h *ToolsHandler) GetCustomerOrders(c *fiber.Ctx) error {
	var req dto.GetCustomerOrdersRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.CustomerID == "" {
		return util.NewValidationError("customer_id required", nil)
	}
	limit := defaultOrderHistoryLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	result, err := h.customers.GetCustomerOrders(c.UserContext(), req.CustomerID, limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerOrdersResponse{
		Customer:   customerResponse(result.Customer),
		TotalCount: result.TotalCount,
		Showing:    orderSummaries(result.Orders),
	}})
}

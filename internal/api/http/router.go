package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/customer-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Tools  *handlers.ToolsHandler
}

// RegisterRoutes wires HTTP routes. Each operation is an independently
// invocable named tool under /tools.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	tools := app.Group("/tools")
	tools.Post("/get_order_status", cfg.Tools.GetOrderStatus)
	tools.Post("/cancel_order", cfg.Tools.CancelOrder)
	tools.Post("/process_refund", cfg.Tools.ProcessRefund)
	tools.Post("/update_shipping_address", cfg.Tools.UpdateShippingAddress)
	tools.Post("/search_customer", cfg.Tools.SearchCustomer)
	tools.Post("/create_support_ticket", cfg.Tools.CreateSupportTicket)
	tools.Post("/get_ticket_status", cfg.Tools.GetTicketStatus)
	tools.Post("/get_customer_orders", cfg.Tools.GetCustomerOrders)
}

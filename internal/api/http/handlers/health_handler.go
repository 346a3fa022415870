package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/customer-service/internal/store"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       *store.Store
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, s *store.Store) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, store: s}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. The entity store is in-process, so
// readiness only confirms it is wired.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "entity store not configured",
			},
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
		"dependencies": fiber.Map{
			"store": "ok",
		},
	})
}

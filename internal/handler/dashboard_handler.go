package handler

import (
	"go-stock-control/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	return c.JSON(h.service.GetStats())
}

// GetPendingReorders returns low-stock items grouped by supplier
func (h *DashboardHandler) GetPendingReorders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"suppliers": h.service.PendingReorders()})
}

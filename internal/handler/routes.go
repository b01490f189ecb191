package handler

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the REST API under /api.
func RegisterRoutes(app *fiber.App, inv *InventoryHandler, dash *DashboardHandler) {
	api := app.Group("/api")

	api.Get("/health", inv.Health)

	api.Get("/inventory", inv.GetInventory)
	api.Post("/inventory/flush", inv.Flush)
	api.Post("/reorder", inv.Reorder)

	api.Get("/reorders/pending", dash.GetPendingReorders)
	api.Get("/dashboard/stats", dash.GetDashboardStats)
}

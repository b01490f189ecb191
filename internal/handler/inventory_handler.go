package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-stock-control/internal/model"
	"go-stock-control/internal/repository"
	"go-stock-control/internal/service"
	"go-stock-control/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ReorderRequest struct {
	ItemIDs []string `json:"item_ids" validate:"required"`
}

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetInventory returns every item. Query params: category (comma separated, optional)
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	var items []model.Item
	if category := c.Query("category"); category != "" {
		items = h.service.GetInventoryByCategory(strings.Split(category, ","))
	} else {
		items = h.service.GetInventory()
	}
	return c.JSON(fiber.Map{"inventory": items})
}

func (h *InventoryHandler) Reorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid JSON"})
		}
		// wrong content type or wrong field types
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": "Request body must be {\"item_ids\": [string, ...]}"})
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": validationDetail(firstErr),
		})
	}

	result, err := h.service.Reorder(req.ItemIDs)

	var durableErr *repository.DurableWriteError
	switch {
	case err == nil:
		return c.JSON(result)
	case errors.Is(err, repository.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": err.Error()})
	case errors.Is(err, repository.ErrStockOverflow):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": err.Error()})
	case errors.As(err, &durableErr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"detail":          "Reorder applied but could not be saved. Retry with POST /api/inventory/flush.",
			"items_restocked": result.ItemsRestocked,
			"new_stock_count": result.NewStockCount,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal Server Error"})
	}
}

// Flush retries saving the inventory file after a failed reorder.
func (h *InventoryHandler) Flush(c *fiber.Ctx) error {
	if err := h.service.Flush(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"detail": "Inventory could not be saved"})
	}
	return c.JSON(fiber.Map{"message": "Inventory saved"})
}

func (h *InventoryHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "ok",
		"unsaved_changes": h.service.HasUnsavedChanges(),
	})
}

func validationDetail(e *validator.ErrorResponse) string {
	if e.Value != "" {
		return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s=%s'", e.FailedField, e.Tag, e.Value)
	}
	return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", e.FailedField, e.Tag)
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go-stock-control/internal/model"
	"go-stock-control/internal/repository"
	"go-stock-control/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const ReorderSuccessMessage = "Reorder placed successfully!"

// Broadcaster pushes a message to every live dashboard client.
type Broadcaster interface {
	Publish(msg []byte)
}

type RestockResult struct {
	Message        string   `json:"message"`
	ItemsRestocked []string `json:"items_restocked"`
	NewStockCount  int      `json:"new_stock_count"`
}

type InventoryService interface {
	GetInventory() []model.Item
	GetInventoryByCategory(categories []string) []model.Item
	Reorder(ids []string) (*RestockResult, error)
	Flush() error
	HasUnsavedChanges() bool
}

type inventoryService struct {
	repo        repository.InventoryRepository
	broadcaster Broadcaster
	reorderQty  int
}

func NewInventoryService(repo repository.InventoryRepository, b Broadcaster, reorderQty int) InventoryService {
	return &inventoryService{
		repo:        repo,
		broadcaster: b,
		reorderQty:  reorderQty,
	}
}

func (s *inventoryService) GetInventory() []model.Item {
	return s.repo.ListAll()
}

func (s *inventoryService) GetInventoryByCategory(categories []string) []model.Item {
	items := s.repo.ListAll()
	categories = lo.FilterMap(categories, func(c string, _ int) (string, bool) {
		c = strings.TrimSpace(c)
		return c, c != ""
	})
	if len(categories) == 0 {
		return items
	}
	return lo.Filter(items, func(it model.Item, _ int) bool {
		return lo.Contains(categories, it.Category)
	})
}

// Reorder restocks every id by the configured quantity. When the save fails
// the result is still returned alongside a *repository.DurableWriteError,
// since the stock change is live in memory.
func (s *inventoryService) Reorder(ids []string) (*RestockResult, error) {
	restocked, err := s.repo.Restock(ids, s.reorderQty)

	var durableErr *repository.DurableWriteError
	switch {
	case err == nil:
	case errors.As(err, &durableErr):
		logger.Log.Error("reorder applied in memory but not persisted",
			zap.Strings("item_ids", lo.Map(restocked, func(it model.Item, _ int) string { return it.ID })),
			zap.Error(durableErr.Err),
		)
	default:
		return nil, err
	}

	result := &RestockResult{
		Message:        ReorderSuccessMessage,
		ItemsRestocked: lo.Map(restocked, func(it model.Item, _ int) string { return it.Name }),
		NewStockCount:  len(restocked),
	}
	if durableErr != nil {
		result.Message = "Reorder applied but could not be saved."
	}

	if len(restocked) > 0 {
		s.broadcastRestock(restocked, durableErr == nil)
	}

	return result, err
}

func (s *inventoryService) Flush() error {
	if err := s.repo.Flush(); err != nil {
		logger.Log.Error("flush failed, inventory file is behind memory", zap.Error(err))
		return err
	}
	return nil
}

func (s *inventoryService) HasUnsavedChanges() bool {
	return s.repo.Dirty()
}

func (s *inventoryService) broadcastRestock(items []model.Item, persisted bool) {
	if s.broadcaster == nil {
		return
	}

	products := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		products = append(products, map[string]interface{}{
			"id":        it.ID,
			"name":      it.Name,
			"supplier":  it.Supplier,
			"old_stock": it.CurrentStock - s.reorderQty,
			"new_stock": it.CurrentStock,
		})
	}

	payload := map[string]interface{}{
		"type":      "stock_update",
		"action":    "reorder_placed",
		"event_id":  uuid.NewString(),
		"items":     products,
		"persisted": persisted,
		"message":   fmt.Sprintf("Restocked %d item(s) by %d units", len(items), s.reorderQty),
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Warn("failed to encode stock update", zap.Error(err))
		return
	}
	s.broadcaster.Publish(msg)
}

package service

import (
	"go-stock-control/internal/model"
	"go-stock-control/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DashboardStats is the overview shown above the inventory table.
type DashboardStats struct {
	TotalProducts  int             `json:"total_products"`
	LowStockCount  int             `json:"low_stock_count"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
}

// SupplierReorder groups the low-stock items that one supplier restocks.
type SupplierReorder struct {
	Supplier string       `json:"supplier"`
	Count    int          `json:"count"`
	Items    []model.Item `json:"items"`
}

type DashboardService interface {
	GetStats() DashboardStats
	PendingReorders() []SupplierReorder
}

type dashboardService struct {
	repo repository.InventoryRepository
}

func NewDashboardService(repo repository.InventoryRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetStats() DashboardStats {
	items := s.repo.ListAll()

	valuation := decimal.Zero
	for _, it := range items {
		valuation = valuation.Add(it.Valuation())
	}

	return DashboardStats{
		TotalProducts:  len(items),
		LowStockCount:  lo.CountBy(items, model.Item.IsLowStock),
		TotalValuation: valuation.Round(2),
	}
}

// PendingReorders lists low-stock items per supplier, suppliers in the order
// they first appear in the inventory.
func (s *dashboardService) PendingReorders() []SupplierReorder {
	low := lo.Filter(s.repo.ListAll(), func(it model.Item, _ int) bool {
		return it.IsLowStock()
	})

	bySupplier := lo.GroupBy(low, func(it model.Item) string { return it.Supplier })
	suppliers := lo.Uniq(lo.Map(low, func(it model.Item, _ int) string { return it.Supplier }))

	out := make([]SupplierReorder, 0, len(suppliers))
	for _, sup := range suppliers {
		items := bySupplier[sup]
		out = append(out, SupplierReorder{
			Supplier: sup,
			Count:    len(items),
			Items:    items,
		})
	}
	return out
}

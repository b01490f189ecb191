package model

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as plain JSON numbers, same as the seed file.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a single SKU in the inventory file.
type Item struct {
	ID           string          `json:"id" validate:"required"`
	Name         string          `json:"name" validate:"required"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock" validate:"gte=0"`
	ReorderLevel int             `json:"reorder_level" validate:"gte=0"`
	Price        decimal.Decimal `json:"price" validate:"gte=0"`
	Supplier     string          `json:"supplier"`
}

// IsLowStock reports whether the item sits at or below its reorder level.
func (i Item) IsLowStock() bool {
	return i.CurrentStock <= i.ReorderLevel
}

// Valuation is price * current stock.
func (i Item) Valuation() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.CurrentStock)))
}

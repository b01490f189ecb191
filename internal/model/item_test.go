package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedRecord = `{
  "id": "MEN-TSH-RED-000",
  "name": "Red T-Shirt",
  "category": "Men's",
  "current_stock": 12,
  "reorder_level": 25,
  "price": 45.67,
  "supplier": "Supplier A"
}`

func TestItem_DecodesSeedFormat(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(seedRecord), &it))

	assert.Equal(t, "MEN-TSH-RED-000", it.ID)
	assert.Equal(t, "Red T-Shirt", it.Name)
	assert.Equal(t, "Men's", it.Category)
	assert.Equal(t, 12, it.CurrentStock)
	assert.Equal(t, 25, it.ReorderLevel)
	assert.True(t, it.Price.Equal(decimal.RequireFromString("45.67")))
	assert.Equal(t, "Supplier A", it.Supplier)
}

func TestItem_PriceEncodesAsNumber(t *testing.T) {
	it := Item{ID: "A-1", Name: "Hat", Price: decimal.RequireFromString("19.99")}

	data, err := json.Marshal(it)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, 19.99, raw["price"])
	assert.ElementsMatch(t,
		[]string{"id", "name", "category", "current_stock", "reorder_level", "price", "supplier"},
		keys(raw))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestItem_IsLowStock(t *testing.T) {
	assert.True(t, Item{CurrentStock: 10, ReorderLevel: 20}.IsLowStock())
	assert.True(t, Item{CurrentStock: 20, ReorderLevel: 20}.IsLowStock())
	assert.False(t, Item{CurrentStock: 21, ReorderLevel: 20}.IsLowStock())
}

func TestItem_Valuation(t *testing.T) {
	it := Item{CurrentStock: 3, Price: decimal.RequireFromString("19.99")}
	assert.True(t, it.Valuation().Equal(decimal.RequireFromString("59.97")))
}

func TestValidateItems(t *testing.T) {
	valid := Item{ID: "A-1", Name: "Hat", CurrentStock: 1, ReorderLevel: 2, Price: decimal.NewFromInt(5)}

	tests := []struct {
		name    string
		items   []Item
		wantErr bool
	}{
		{"empty set", []Item{}, false},
		{"valid", []Item{valid, {ID: "B-2", Name: "Belt"}}, false},
		{"missing id", []Item{{Name: "Hat"}}, true},
		{"missing name", []Item{{ID: "A-1"}}, true},
		{"negative stock", []Item{{ID: "A-1", Name: "Hat", CurrentStock: -1}}, true},
		{"negative reorder level", []Item{{ID: "A-1", Name: "Hat", ReorderLevel: -1}}, true},
		{"negative price", []Item{{ID: "A-1", Name: "Hat", Price: decimal.NewFromInt(-1)}}, true},
		{"duplicate id", []Item{valid, valid}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItems(tt.items)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

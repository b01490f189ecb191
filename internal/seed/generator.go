// Package seed builds random clothing-store inventory for demos.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go-stock-control/internal/model"

	"github.com/shopspring/decimal"
)

var (
	Categories = []string{"Men's", "Women's", "Children's", "Accessories"}
	Suppliers  = []string{"Supplier A", "Supplier B", "Supplier C"}

	productTypes = map[string][]string{
		"Men's":       {"T-Shirt", "Jeans", "Jacket", "Shoes"},
		"Women's":     {"Dress", "Blouse", "Skirt", "Sandals"},
		"Children's":  {"Onesie", "Sweater", "Sneakers", "Pajamas"},
		"Accessories": {"Hat", "Scarf", "Belt", "Sunglasses"},
	}
	colors = []string{"Red", "Blue", "Green", "Black", "White", "Grey", "Brown"}
)

const (
	MaxStock        = 150
	MinReorderLevel = 20
	MaxReorderLevel = 40
)

var (
	minPrice = decimal.RequireFromString("15.99")
	maxPrice = decimal.RequireFromString("99.99")
)

// Generate returns n items with SKUs of the form CAT-TYP-COL-NNN.
func Generate(n int, r *rand.Rand) []model.Item {
	items := make([]model.Item, 0, n)
	for i := 0; i < n; i++ {
		category := pick(r, Categories)
		product := pick(r, productTypes[category])
		color := pick(r, colors)

		items = append(items, model.Item{
			ID:           fmt.Sprintf("%s-%s-%s-%03d", prefix(category), prefix(product), prefix(color), i),
			Name:         color + " " + product,
			Category:     category,
			CurrentStock: r.IntN(MaxStock + 1),
			ReorderLevel: MinReorderLevel + r.IntN(MaxReorderLevel-MinReorderLevel+1),
			Price:        randomPrice(r),
			Supplier:     pick(r, Suppliers),
		})
	}
	return items
}

func pick(r *rand.Rand, from []string) string {
	return from[r.IntN(len(from))]
}

func prefix(s string) string {
	return strings.ToUpper(s[:3])
}

func randomPrice(r *rand.Rand) decimal.Decimal {
	span := maxPrice.Sub(minPrice)
	return minPrice.Add(span.Mul(decimal.NewFromFloat(r.Float64()))).Round(2)
}

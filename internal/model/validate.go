package model

import (
	"fmt"

	"go-stock-control/pkg/validator"
)

// ValidateItems checks a freshly loaded record set: every item must carry
// its required fields with non-negative numbers, and ids must be unique.
func ValidateItems(items []Item) error {
	seen := make(map[string]int, len(items))
	for i := range items {
		if errs := validator.ValidateStruct(items[i]); len(errs) > 0 {
			firstErr := errs[0]
			return fmt.Errorf("item #%d (%q): field '%s' failed on tag '%s'", i, items[i].ID, firstErr.FailedField, firstErr.Tag)
		}
		if prev, ok := seen[items[i].ID]; ok {
			return fmt.Errorf("duplicate item id %q at #%d and #%d", items[i].ID, prev, i)
		}
		seen[items[i].ID] = i
	}
	return nil
}

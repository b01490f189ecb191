package repository

import (
	"errors"
	"fmt"

	"go-stock-control/internal/model"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrInvalidAmount = errors.New("restock amount must be positive")
	ErrStockOverflow = errors.New("restock would overflow stock count")

	// ErrDurableWrite matches any *DurableWriteError.
	ErrDurableWrite = errors.New("mutation applied in memory but not persisted")
)

type ItemNotFoundError struct {
	ID string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item ID %s not found.", e.ID)
}

func (e *ItemNotFoundError) Unwrap() error { return ErrItemNotFound }

type StockOverflowError struct {
	ID     string
	Stock  int
	Amount int
}

func (e *StockOverflowError) Error() string {
	return fmt.Sprintf("Item ID %s cannot take %d more units (current stock %d).", e.ID, e.Amount, e.Stock)
}

func (e *StockOverflowError) Unwrap() error { return ErrStockOverflow }

// DurableWriteError is returned when a restock was applied in memory but the
// following save failed. Restocked holds the records as they now stand in
// memory; they stay dirty until a later save succeeds.
type DurableWriteError struct {
	Restocked []model.Item
	Err       error
}

func (e *DurableWriteError) Error() string {
	return fmt.Sprintf("%s: %v", ErrDurableWrite, e.Err)
}

func (e *DurableWriteError) Unwrap() error { return e.Err }

func (e *DurableWriteError) Is(target error) bool { return target == ErrDurableWrite }

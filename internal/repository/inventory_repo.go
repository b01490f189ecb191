package repository

import (
	"fmt"
	"math"
	"sync"

	"go-stock-control/internal/model"

	"github.com/samber/lo"
)

// Persister writes the full record set to stable storage.
type Persister interface {
	Save(items []model.Item) error
}

type InventoryRepository interface {
	ListAll() []model.Item
	Restock(ids []string, amount int) ([]model.Item, error)
	Flush() error
	Dirty() bool
}

type inventoryRepo struct {
	mu    sync.RWMutex
	items []model.Item
	index map[string]int
	dirty bool

	persister Persister
}

// NewInventoryRepo takes ownership of items, which must already have unique
// ids (filestore validates them on load).
func NewInventoryRepo(items []model.Item, p Persister) (InventoryRepository, error) {
	r := &inventoryRepo{
		items:     make([]model.Item, len(items)),
		index:     make(map[string]int, len(items)),
		persister: p,
	}
	copy(r.items, items)
	for i, it := range r.items {
		if _, ok := r.index[it.ID]; ok {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		r.index[it.ID] = i
	}
	return r, nil
}

func (r *inventoryRepo) ListAll() []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Restock adds amount to the stock of every id. An unknown id, or a stock
// count that would overflow, fails the whole batch before anything is
// touched. The write lock covers the save so the file always reflects a
// serial order of restocks.
func (r *inventoryRepo) Restock(ids []string, amount int) ([]model.Item, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	ids = lo.Uniq(ids)

	r.mu.Lock()
	defer r.mu.Unlock()

	positions := make([]int, 0, len(ids))
	for _, id := range ids {
		pos, ok := r.index[id]
		if !ok {
			return nil, &ItemNotFoundError{ID: id}
		}
		if r.items[pos].CurrentStock > math.MaxInt-amount {
			return nil, &StockOverflowError{ID: id, Stock: r.items[pos].CurrentStock, Amount: amount}
		}
		positions = append(positions, pos)
	}

	if len(positions) == 0 {
		return []model.Item{}, nil
	}

	restocked := make([]model.Item, 0, len(positions))
	for _, pos := range positions {
		r.items[pos].CurrentStock += amount
		restocked = append(restocked, r.items[pos])
	}

	if err := r.persistLocked(); err != nil {
		return restocked, &DurableWriteError{Restocked: restocked, Err: err}
	}
	return restocked, nil
}

// Flush saves the record set again if an earlier save failed.
func (r *inventoryRepo) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return nil
	}
	if err := r.persistLocked(); err != nil {
		return &DurableWriteError{Err: err}
	}
	return nil
}

func (r *inventoryRepo) Dirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}

func (r *inventoryRepo) persistLocked() error {
	snapshot := make([]model.Item, len(r.items))
	copy(snapshot, r.items)
	if err := r.persister.Save(snapshot); err != nil {
		r.dirty = true
		return err
	}
	r.dirty = false
	return nil
}

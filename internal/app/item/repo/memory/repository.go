// Package memory is an in-memory item repository. It exists so the
// validation and handler layers can be exercised without a database; it is
// the only cross-request mutable state in the service and is guarded by a
// single RWMutex.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/itemkit/itemsapi/internal/app/item"
	"github.com/samber/lo"
)

type Repository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]item.Item
	order []uuid.UUID // insertion order, so lists are deterministic
}

func NewRepository() *Repository {
	return &Repository{items: make(map[uuid.UUID]item.Item)}
}

func (r *Repository) Create(_ context.Context, itm item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itm.ID]; ok {
		return fmt.Errorf("memory.Repository.Create: %w", item.ErrItemAlreadyExists())
	}

	r.items[itm.ID] = itm
	r.order = append(r.order, itm.ID)

	return nil
}

func (r *Repository) Get(_ context.Context, id uuid.UUID) (item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itm, ok := r.items[id]
	if !ok {
		return item.Item{}, fmt.Errorf("memory.Repository.Get: %w", item.ErrItemNotFound())
	}

	return itm, nil
}

// List filters by status first, then windows by offset/limit. Total counts
// the filtered set, not the returned page.
func (r *Repository) List(_ context.Context, q item.ListQuery) (item.ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := lo.FilterMap(r.order, func(id uuid.UUID, _ int) (item.Item, bool) {
		itm, ok := r.items[id]
		if !ok {
			return item.Item{}, false
		}
		if q.Status != nil && itm.Status != *q.Status {
			return item.Item{}, false
		}
		return itm, true
	})

	total := len(all)
	start := q.Offset
	if start > total {
		start = total
	}
	end := start + q.Limit
	if q.Limit <= 0 || end > total {
		end = total
	}

	return item.ListResult{
		Items:  all[start:end],
		Total:  total,
		Limit:  q.Limit,
		Offset: q.Offset,
	}, nil
}

func (r *Repository) Update(_ context.Context, itm item.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itm.ID]; !ok {
		return fmt.Errorf("memory.Repository.Update: %w", item.ErrItemNotFound())
	}

	r.items[itm.ID] = itm

	return nil
}

func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("memory.Repository.Delete: %w", item.ErrItemNotFound())
	}

	delete(r.items, id)
	r.order = lo.Without(r.order, id)

	return nil
}

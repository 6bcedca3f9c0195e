package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
)

type Repository interface {
	Create(ctx context.Context, item Item) error
	Get(ctx context.Context, id uuid.UUID) (Item, error)
	List(ctx context.Context, q ListQuery) (ListResult, error)
	Update(ctx context.Context, item Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IDGenerator interface {
	New() (uuid.UUID, error)
}

type TimeGenerator interface {
	Now() time.Time
}

type Generators struct {
	ID   IDGenerator
	Time TimeGenerator
}

type core struct {
	repo Repository
	gen  Generators
}

func NewCore(repo Repository, gen Generators) (*core, error) {
	if repo == nil || gen.ID == nil || gen.Time == nil {
		return nil, fmt.Errorf("item.NewCore: %w", fmt.Errorf("nil dependency"))
	}

	return &core{repo: repo, gen: gen}, nil
}

// CreateItem stores a new item with a generated ID and active status.
// Inputs are assumed validated by the transport layer; the core only
// normalizes whitespace.
func (c *core) CreateItem(ctx context.Context, req CreateItemReq) (Item, error) {
	id, err := c.gen.ID.New()
	if err != nil {
		return Item{}, fmt.Errorf("item.core.CreateItem: %w", err)
	}

	now := c.gen.Time.Now()
	itm := Item{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = c.repo.Create(ctx, itm); err != nil {
		return Item{}, fmt.Errorf("item.core.CreateItem: %w", err)
	}

	return itm, nil
}

func (c *core) GetItem(ctx context.Context, id uuid.UUID) (Item, error) {
	if id == uuid.Nil {
		return Item{}, fmt.Errorf("item.core.GetItem: %w", errNilID())
	}

	itm, err := c.repo.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("item.core.GetItem: %w", err)
	}

	return itm, nil
}

func (c *core) ListItems(ctx context.Context, q ListQuery) (ListResult, error) {
	res, err := c.repo.List(ctx, q)
	if err != nil {
		return ListResult{}, fmt.Errorf("item.core.ListItems: %w", err)
	}

	return res, nil
}

// UpdateItem applies a partial update: only non-nil request fields change.
func (c *core) UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemReq) (Item, error) {
	if id == uuid.Nil {
		return Item{}, fmt.Errorf("item.core.UpdateItem: %w", errNilID())
	}

	itm, err := c.repo.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("item.core.UpdateItem: %w", err)
	}

	if req.Name != nil {
		itm.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		itm.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		itm.Status = *req.Status
	}
	itm.UpdatedAt = c.gen.Time.Now()

	if err = c.repo.Update(ctx, itm); err != nil {
		return Item{}, fmt.Errorf("item.core.UpdateItem: %w", err)
	}

	return itm, nil
}

func (c *core) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("item.core.DeleteItem: %w", errNilID())
	}

	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("item.core.DeleteItem: %w", err)
	}

	return nil
}

func errNilID() error {
	return apperr.ErrBadRequest().WithDetail(fmt.Sprintf("%s cannot be nil", FieldItemID))
}

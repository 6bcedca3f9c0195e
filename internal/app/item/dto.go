package item

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string { return string(s) }

type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateItemReq struct {
	Name        string
	Description string
}

// UpdateItemReq is a partial update: nil fields are left untouched.
type UpdateItemReq struct {
	Name        *string
	Description *string
	Status      *Status
}

type ListQuery struct {
	Limit  int
	Offset int
	Status *Status
}

type ListResult struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

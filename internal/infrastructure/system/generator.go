package system

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDv7Generator issues time-ordered IDs so insertion order and ID order
// agree in listings.
type UUIDv7Generator struct{}

func (g *UUIDv7Generator) New() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("UUIDv7Generator.New: %w", err)
	}

	return id, nil
}

type TimeGenerator struct{}

func (g *TimeGenerator) Now() time.Time {
	return time.Now().UTC()
}

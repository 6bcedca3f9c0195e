package item

import (
	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
	"github.com/itemkit/itemsapi/internal/infrastructure/validation"
	"github.com/samber/lo"
)

const (
	FieldItemID      apperr.Field = "id"
	FieldName        apperr.Field = "name"
	FieldDescription apperr.Field = "description"
	FieldStatus      apperr.Field = "status"
)

func ErrItemNotFound() error {
	return apperr.New("Item not found", apperr.CodeNotFound, apperr.ClassNotFound, apperr.LogLevelWarn)
}

func ErrItemAlreadyExists() error {
	return apperr.New("Item already exists", apperr.CodeConflict, apperr.ClassConflict, apperr.LogLevelWarn)
}

// ErrValidation converts a failed validation result into the aggregated
// Validation error the client sees, preserving detail order.
func ErrValidation(res validation.Result) error {
	return apperr.NewValidationError(lo.Map(res.Errors, func(d validation.ErrorDetail, _ int) apperr.Violation {
		return apperr.Violation{Field: apperr.Field(d.Field), Message: d.Message, Value: d.Value}
	}))
}

package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itemkit/itemsapi/internal/infrastructure/validation"
)

type ValidationConfig struct {
	MaxNameLength        int `mapstructure:"max_name_length" json:"max_name_length"`
	MaxDescriptionLength int `mapstructure:"max_description_length" json:"max_description_length"`
	MaxListLimit         int `mapstructure:"max_list_limit" json:"max_list_limit"`
}

type validator struct {
	cfg    ValidationConfig
	create validation.Schema
	update validation.Schema
	list   validation.Schema
}

func NewValidator(cfg ValidationConfig) (*validator, error) {
	if cfg.MaxNameLength <= 0 {
		return nil, fmt.Errorf("item.NewValidator: %w", fmt.Errorf("max name length must be positive"))
	}
	if cfg.MaxDescriptionLength <= 0 {
		return nil, fmt.Errorf("item.NewValidator: %w", fmt.Errorf("max description length must be positive"))
	}
	if cfg.MaxListLimit <= 0 {
		return nil, fmt.Errorf("item.NewValidator: %w", fmt.Errorf("max list limit must be positive"))
	}

	v := &validator{cfg: cfg}
	v.create = validation.Schema{
		Strict: true,
		Rules: []validation.Rule{
			v.nameRule(true),
			v.descriptionRule(true),
		},
	}
	v.update = validation.Schema{
		Strict: true,
		Rules: []validation.Rule{
			v.nameRule(false),
			v.descriptionRule(false),
			statusRule(),
		},
	}
	v.list = validation.Schema{
		// List queries may carry other, ignored parameters such as sort or filter.
		Strict: false,
		Rules: []validation.Rule{
			v.limitRule(),
			offsetRule(),
			statusRule(),
		},
	}

	return v, nil
}

// ValidateCreateRequest checks a decoded create body. The schema is strict:
// clients cannot set id or status directly.
func (v *validator) ValidateCreateRequest(body any) validation.Result {
	return validation.Validate(body, v.create)
}

// ValidateUpdateRequest checks a decoded update body. All fields are
// optional; an empty partial update is legal.
func (v *validator) ValidateUpdateRequest(body any) validation.Result {
	return validation.Validate(body, v.update)
}

// ValidateListQuery checks string-encoded query parameters.
func (v *validator) ValidateListQuery(query any) validation.Result {
	return validation.Validate(query, v.list)
}

// ValidateIDParam checks a bare path parameter. It validates a scalar, not an
// object, so it deliberately stays outside the schema machinery instead of
// being wrapped in a one-field schema. Failure modes are checked in order and
// only the first applicable one is reported.
func ValidateIDParam(value any) validation.Result {
	field := FieldItemID.String()

	if !validation.IsDefined(value) {
		return singleError(field, fmt.Sprintf("%s parameter is required", field), nil)
	}
	if !validation.IsString(value) {
		return singleError(field, fmt.Sprintf("%s must be a string", field), value)
	}
	if !validation.IsNonEmptyString(value) {
		return singleError(field, fmt.Sprintf("%s cannot be empty", field), value)
	}

	return validation.Result{}
}

func singleError(field, message string, value any) validation.Result {
	return validation.Result{Errors: []validation.ErrorDetail{{Field: field, Message: message, Value: value}}}
}

// nameRule bounds length above via MaxLength and below via the non-empty
// custom check, so a blank name yields exactly one "cannot be empty" error
// instead of a pair of overlapping length and emptiness complaints.
func (v *validator) nameRule(required bool) validation.Rule {
	return validation.Rule{
		Field:     FieldName.String(),
		Required:  required,
		Type:      validation.TypeString,
		MaxLength: &v.cfg.MaxNameLength,
		Custom:    nonBlank(FieldName.String()),
	}
}

func (v *validator) descriptionRule(required bool) validation.Rule {
	return validation.Rule{
		Field:     FieldDescription.String(),
		Required:  required,
		Type:      validation.TypeString,
		MaxLength: &v.cfg.MaxDescriptionLength,
		Custom:    nonBlank(FieldDescription.String()),
	}
}

func statusRule() validation.Rule {
	return validation.Rule{
		Field: FieldStatus.String(),
		Type:  validation.TypeString,
		Enum:  []any{StatusActive.String(), StatusInactive.String()},
	}
}

// limitRule validates a string-encoded integer because query parameters
// arrive as strings.
func (v *validator) limitRule() validation.Rule {
	msg := fmt.Sprintf("limit must be an integer between 1 and %d", v.cfg.MaxListLimit)
	max := v.cfg.MaxListLimit

	return validation.Rule{
		Field: "limit",
		Type:  validation.TypeString,
		Custom: func(value any) validation.CheckResult {
			s, _ := value.(string)
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > max {
				return validation.Fail(msg)
			}
			return validation.Pass()
		},
	}
}

func offsetRule() validation.Rule {
	return validation.Rule{
		Field: "offset",
		Type:  validation.TypeString,
		Custom: func(value any) validation.CheckResult {
			s, _ := value.(string)
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return validation.Fail("offset must be a non-negative integer")
			}
			return validation.Pass()
		},
	}
}

func nonBlank(field string) func(any) validation.CheckResult {
	return func(value any) validation.CheckResult {
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return validation.Fail(fmt.Sprintf("%s cannot be empty", field))
		}
		return validation.Pass()
	}
}

package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// CheckResult is the outcome of a custom check: Pass, or Fail carrying an
// optional message. A Fail with an empty message falls back to a generic
// "<field> is invalid".
type CheckResult struct {
	ok      bool
	message string
}

func Pass() CheckResult {
	return CheckResult{ok: true}
}

func Fail(message string) CheckResult {
	return CheckResult{message: message}
}

// Rule is a single declarative field constraint. Zero pointer fields mean the
// corresponding check is not configured. Rules are immutable once built.
type Rule struct {
	Field     string
	Required  bool
	Type      Type
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Min       *float64
	Max       *float64
	Enum      []any
	Custom    func(value any) CheckResult
}

// CheckField applies one rule to one value. The required and type checks
// short-circuit: no further checks run against an absent or wrongly-typed
// value, to avoid cascading misleading errors. Every check after a type pass
// runs unconditionally and its errors accumulate.
func CheckField(value any, present bool, rule Rule) []ErrorDetail {
	if !present {
		if rule.Required {
			return []ErrorDetail{{Field: rule.Field, Message: fmt.Sprintf("%s is required", rule.Field)}}
		}
		return nil
	}

	if rule.Type != "" && !matchesType(value, rule.Type) {
		return []ErrorDetail{{
			Field:   rule.Field,
			Message: fmt.Sprintf("%s must be %s %s", rule.Field, article(rule.Type), rule.Type),
			Value:   value,
		}}
	}

	var errs []ErrorDetail

	if s, ok := value.(string); ok {
		if rule.MinLength != nil && len(s) < *rule.MinLength {
			errs = append(errs, ErrorDetail{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be at least %d characters", rule.Field, *rule.MinLength),
				Value:   value,
			})
		}
		if rule.MaxLength != nil && len(s) > *rule.MaxLength {
			errs = append(errs, ErrorDetail{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be at most %d characters", rule.Field, *rule.MaxLength),
				Value:   value,
			})
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(s) {
			errs = append(errs, ErrorDetail{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s has an invalid format", rule.Field),
				Value:   value,
			})
		}
	}

	if n, ok := NumberValue(value); ok {
		if rule.Min != nil && n < *rule.Min {
			errs = append(errs, ErrorDetail{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be at least %v", rule.Field, *rule.Min),
				Value:   value,
			})
		}
		if rule.Max != nil && n > *rule.Max {
			errs = append(errs, ErrorDetail{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must be at most %v", rule.Field, *rule.Max),
				Value:   value,
			})
		}
	}

	if len(rule.Enum) > 0 && !enumContains(rule.Enum, value) {
		errs = append(errs, ErrorDetail{
			Field:   rule.Field,
			Message: fmt.Sprintf("%s must be one of: %s", rule.Field, enumList(rule.Enum)),
			Value:   value,
		})
	}

	if rule.Custom != nil {
		if res := rule.Custom(value); !res.ok {
			msg := res.message
			if msg == "" {
				msg = fmt.Sprintf("%s is invalid", rule.Field)
			}
			errs = append(errs, ErrorDetail{Field: rule.Field, Message: msg, Value: value})
		}
	}

	return errs
}

func matchesType(value any, t Type) bool {
	switch t {
	case TypeString:
		return IsString(value)
	case TypeNumber:
		return IsNumber(value)
	case TypeBoolean:
		return IsBool(value)
	case TypeArray:
		return IsArray(value)
	case TypeObject:
		return IsObject(value)
	}

	return false
}

func enumContains(enum []any, value any) bool {
	for _, member := range enum {
		if reflect.DeepEqual(member, value) {
			return true
		}
	}

	return false
}

func enumList(enum []any) string {
	parts := make([]string, 0, len(enum))
	for _, member := range enum {
		parts = append(parts, fmt.Sprintf("%v", member))
	}

	return strings.Join(parts, ", ")
}

func article(t Type) string {
	if t == TypeArray || t == TypeObject {
		return "an"
	}
	return "a"
}

// Package validation implements declarative, schema-driven validation of
// decoded-JSON request data: one Rule per field, a Schema per request shape,
// and a Result aggregating every failing check.
package validation

import (
	"fmt"
	"sort"
)

// FieldRoot names errors about the input as a whole rather than a field.
const FieldRoot = "data"

// ErrorDetail is a single field-level failure. Details are never deduplicated:
// a value violating two constraints yields two entries.
type ErrorDetail struct {
	Field   string
	Message string
	Value   any
}

type Result struct {
	Errors []ErrorDetail
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Schema is an ordered rule set. Strict schemas additionally report every
// input field not named by a rule.
type Schema struct {
	Rules  []Rule
	Strict bool
}

// Validate applies a schema to a value. Non-object input short-circuits to a
// single root-level error; otherwise rules run in schema order and all their
// errors accumulate. Unknown-field errors under Strict are appended last, in
// sorted key order so repeated runs produce identical results (Go map
// iteration order is unspecified).
func Validate(value any, schema Schema) Result {
	obj, ok := value.(map[string]any)
	if !ok {
		return Result{Errors: []ErrorDetail{{Field: FieldRoot, Message: "Data must be an object"}}}
	}

	var errs []ErrorDetail
	for _, rule := range schema.Rules {
		v, found := obj[rule.Field]
		present := found && v != nil
		errs = append(errs, CheckField(v, present, rule)...)
	}

	if schema.Strict {
		known := make(map[string]struct{}, len(schema.Rules))
		for _, rule := range schema.Rules {
			known[rule.Field] = struct{}{}
		}

		var extra []string
		for name := range obj {
			if _, ok := known[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)

		for _, name := range extra {
			errs = append(errs, ErrorDetail{
				Field:   name,
				Message: fmt.Sprintf("Unknown field: %s", name),
				Value:   obj[name],
			})
		}
	}

	return Result{Errors: errs}
}

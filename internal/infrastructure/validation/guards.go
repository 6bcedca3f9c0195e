package validation

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Type guards over decoded-JSON values. Handlers decode bodies with
// json.Decoder.UseNumber, so numeric values arrive as json.Number; values
// produced in code may be native Go numbers. The guards accept both.

func IsDefined(v any) bool {
	return v != nil
}

func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

func IsNumber(v any) bool {
	_, ok := NumberValue(v)
	return ok
}

// NumberValue extracts a float64 from any numeric representation.
func NumberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}

	return 0, false
}

func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func IsArray(v any) bool {
	_, ok := v.([]any)
	return ok
}

func IsObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func IsUUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)

	return err == nil
}

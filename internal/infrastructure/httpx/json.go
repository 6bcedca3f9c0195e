package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
)

// DecodeJSON decodes a request body into v. Numbers are kept as json.Number
// so the validation layer can distinguish integers from floats. Unknown
// fields are NOT rejected here: strict schemas report them as validation
// errors with proper field names instead of a blanket decode failure.
func DecodeJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return fmt.Errorf("httpx.DecodeJSON: %w",
			apperr.ErrBadRequest().WithDetail("Content-Type required"))
	}

	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return fmt.Errorf("httpx.DecodeJSON: %w",
			apperr.ErrBadRequest().WithDetail("invalid Content-Type header"))
	}

	switch mt {
	case "application/json", "application/problem+json", "application/vnd.api+json":
		// ok
	default:
		return fmt.Errorf("httpx.DecodeJSON: %w",
			apperr.ErrBadRequest().WithDetail("unsupported Content-Type; allowed: application/json, application/problem+json, application/vnd.api+json"))
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("httpx.DecodeJSON: %w",
			apperr.ErrBadRequest().WithDetail(err.Error()))
	}
	// Disallows a second JSON object
	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("httpx.DecodeJSON: %w",
			apperr.ErrBadRequest().WithDetail("request body must contain a single JSON value"))
	}
	return nil
}

package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// classifyRule maps message keywords to a constructor. Order matters: a message
// containing two trigger keywords resolves to whichever rule is listed first.
// This is a heuristic for errors that were never typed, not a guarantee.
type classifyRule struct {
	keywords []string
	build    func() *appError
}

var classifyRules = []classifyRule{
	{keywords: []string{"validation", "invalid"}, build: func() *appError {
		return New(BadRequestMsg, CodeValidation, ClassValidation, LogLevelWarn)
	}},
	{keywords: []string{"not found", "does not exist"}, build: ErrNotFound},
	{keywords: []string{"unauthorized", "authentication"}, build: ErrUnauthorized},
	{keywords: []string{"forbidden", "permission"}, build: ErrForbidden},
	{keywords: []string{"conflict", "already exists"}, build: ErrConflict},
	{keywords: []string{"rate limit", "throttle"}, build: ErrRateLimited},
}

// Classify resolves any error to a typed appError. Typed errors pass through
// unchanged. Untyped errors are matched against keyword substrings of their
// lowercased message, first match wins; anything unmatched degrades to an
// Internal error wrapping the original message as log-only detail.
func Classify(err error) *appError {
	var ae *appError
	if errors.As(err, &ae) {
		return ae
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.build().WithDetail(err.Error())
			}
		}
	}

	return ErrInternal().WithDetail(err.Error())
}

// NewValidationError aggregates field-level violations into a single
// Validation error. The user message joins "field: message" pairs in the
// order the violations were produced.
func NewValidationError(violations []Violation) *appError {
	parts := make([]string, 0, len(violations))
	for _, v := range violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}

	e := New(strings.Join(parts, ", "), CodeValidation, ClassValidation, LogLevelWarn)
	e.Violations = violations

	return e
}

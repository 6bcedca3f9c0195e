package apperr

import (
	"errors"
	"net/http"
	"slices"
)

const (
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeRateLimit    Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

const (
	BadRequestMsg   = "Bad request"
	UnauthorizedMsg = "Unauthorized"
	ForbiddenMsg    = "Forbidden"
	NotFoundMsg     = "Resource not found"
	ConflictMsg     = "Conflict"
	RateLimitMsg    = "Too many requests"
	// InternalMsg is the only message an Internal error may show to a client.
	// The original error text stays in the detail and reaches logs only.
	InternalMsg = "An unexpected error occurred"
)

func ErrBadRequest() *appError {
	return &appError{
		Message:  BadRequestMsg,
		Code:     CodeBadRequest,
		class:    ClassBadRequest,
		logLevel: LogLevelWarn,
		detail:   BadRequestMsg,
	}
}

func ErrUnauthorized() *appError {
	return &appError{
		Message:  UnauthorizedMsg,
		Code:     CodeUnauthorized,
		class:    ClassUnauthorized,
		logLevel: LogLevelWarn,
		detail:   UnauthorizedMsg,
	}
}

func ErrForbidden() *appError {
	return &appError{
		Message:  ForbiddenMsg,
		Code:     CodeForbidden,
		class:    ClassForbidden,
		logLevel: LogLevelWarn,
		detail:   ForbiddenMsg,
	}
}

func ErrNotFound() *appError {
	return &appError{
		Message:  NotFoundMsg,
		Code:     CodeNotFound,
		class:    ClassNotFound,
		logLevel: LogLevelWarn,
		detail:   NotFoundMsg,
	}
}

func ErrConflict() *appError {
	return &appError{
		Message:  ConflictMsg,
		Code:     CodeConflict,
		class:    ClassConflict,
		logLevel: LogLevelWarn,
		detail:   ConflictMsg,
	}
}

func ErrRateLimited() *appError {
	return &appError{
		Message:  RateLimitMsg,
		Code:     CodeRateLimit,
		class:    ClassRateLimit,
		logLevel: LogLevelWarn,
		detail:   RateLimitMsg,
	}
}

func ErrInternal() *appError {
	return &appError{
		Message:  InternalMsg,
		Code:     CodeInternal,
		class:    ClassInternal,
		logLevel: LogLevelError,
		detail:   InternalMsg,
	}
}

// appError is used for all application-level errors that should be shown to the user (e.g. 400, 404, 409).
// For internal server errors (500), the Message stays generic and the detail carries the original
// error text for logs, so internals are never exposed to the client.
type appError struct {
	Message    string      `json:"message"` // Message for user
	Code       Code        `json:"code"`
	Violations []Violation `json:"violations,omitempty"`
	class      Class
	logLevel   LogLevel
	detail     string // detail for logs
}

func New(message string, code Code, class Class, logLevel LogLevel) *appError {
	return &appError{
		Message:  message,
		class:    class,
		logLevel: logLevel,
		Code:     code,
		detail:   message,
	}
}

func (e *appError) WithUserMessage(message string) *appError {
	e.Message = message
	return e
}

func (e *appError) WithDetail(detail string) *appError {
	e.detail = detail
	return e
}

func (e *appError) WithViolation(v Violation) *appError {
	e.Violations = append(e.Violations, v)
	return e
}

func (e *appError) Error() string {
	return e.detail
}

func (e *appError) UserMessage() string {
	return e.Message
}

func (e *appError) Is(target error) bool {
	if t, ok := target.(*appError); ok {
		if e.Code != t.Code {
			return false
		}

		return slices.EqualFunc(e.Violations, t.Violations, func(a, b Violation) bool {
			return a.Field == b.Field && a.Message == b.Message
		})
	}

	return false
}

// Violation is a single field-level failure carried by a Validation error.
// Value keeps the offending input for diagnostics and is omitted when absent.
type Violation struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type Field string

func (f Field) String() string { return string(f) }

const (
	FieldRequest Field = "request"
)

type Code string

func (c Code) String() string { return string(c) }

type Class uint8

const (
	ClassInternal     Class = 1
	ClassBadRequest   Class = 2
	ClassNotFound     Class = 3
	ClassUnauthorized Class = 4
	ClassForbidden    Class = 5
	ClassConflict     Class = 6
	ClassValidation   Class = 7
	ClassRateLimit    Class = 8
)

// HTTPStatus maps a class to its fixed status code.
func (c Class) HTTPStatus() int {
	switch c {
	case ClassValidation, ClassBadRequest:
		return http.StatusBadRequest
	case ClassUnauthorized:
		return http.StatusUnauthorized
	case ClassForbidden:
		return http.StatusForbidden
	case ClassNotFound:
		return http.StatusNotFound
	case ClassConflict:
		return http.StatusConflict
	case ClassRateLimit:
		return http.StatusTooManyRequests
	case ClassInternal:
		return http.StatusInternalServerError
	}

	return 0
}

type LogLevel int

const (
	LogLevelError LogLevel = 0
	LogLevelWarn  LogLevel = 1
)

func ClassOf(err error) Class {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.class
	}
	return ClassInternal
}

func CodeOf(err error) Code {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

func LogLevelOf(err error) LogLevel {
	var ae *appError
	if errors.As(err, &ae) {
		return ae.logLevel
	}
	return LogLevelError
}

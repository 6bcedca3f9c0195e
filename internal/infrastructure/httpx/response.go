// Package httpx builds and writes the uniform JSON envelopes every endpoint
// responds with. Builders are pure functions over (status, payload, headers);
// writing to the wire is a separate step so the envelope shape stays testable
// without a running server.
package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
)

// Response is a fully built transport envelope, ready to be written.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
}

const internalFallbackBody = `{"success":false,"error":"INTERNAL_ERROR","message":"An unexpected error occurred","statusCode":500}`

func standardHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type, Authorization, X-Requested-With",
		"Access-Control-Max-Age":       "86400",
	}
}

// Success builds a 200 envelope. message may be empty.
func Success(data any, message string) Response {
	return SuccessStatus(http.StatusOK, data, message)
}

// Created builds a 201 envelope for newly created resources.
func Created(data any, message string) Response {
	return SuccessStatus(http.StatusCreated, data, message)
}

func SuccessStatus(status int, data any, message string) Response {
	return Response{
		StatusCode: status,
		Headers:    standardHeaders(),
		Body:       marshalBody(successEnvelope{Success: true, Data: data, Message: message}),
	}
}

// NoContent builds a bodyless 204. The body is an empty string, not "null"
// or "{}": some clients choke on a JSON body with a 204 status.
func NoContent() Response {
	return Response{
		StatusCode: http.StatusNoContent,
		Headers:    standardHeaders(),
		Body:       "",
	}
}

// Options builds the CORS preflight response.
func Options() Response {
	return NoContent()
}

// Error builds an error envelope with an explicit code and status.
func Error(code apperr.Code, message string, status int) Response {
	return Response{
		StatusCode: status,
		Headers:    standardHeaders(),
		Body: marshalBody(errorEnvelope{
			Error:      code.String(),
			Message:    message,
			StatusCode: status,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}),
	}
}

func NotFound(message string) Response {
	if message == "" {
		message = apperr.NotFoundMsg
	}
	return Error(apperr.CodeNotFound, message, http.StatusNotFound)
}

func Unauthorized(message string) Response {
	if message == "" {
		message = apperr.UnauthorizedMsg
	}
	return Error(apperr.CodeUnauthorized, message, http.StatusUnauthorized)
}

func RateLimited(message string) Response {
	if message == "" {
		message = apperr.RateLimitMsg
	}
	return Error(apperr.CodeRateLimit, message, http.StatusTooManyRequests)
}

// FromAppError converts any error into its envelope: typed errors keep their
// class, code and user message, everything else is classified first.
func FromAppError(err error) Response {
	ae := apperr.Classify(err)

	return Error(ae.Code, ae.UserMessage(), apperr.ClassOf(ae).HTTPStatus())
}

func marshalBody(env any) string {
	b, err := json.Marshal(env)
	if err != nil {
		return internalFallbackBody
	}

	return string(b)
}

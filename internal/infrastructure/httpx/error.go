package httpx

import (
	"context"
	"net/http"

	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
	"github.com/itemkit/itemsapi/internal/infrastructure/logger"
)

// Write serializes a built Response onto the wire.
func Write(ctx context.Context, w http.ResponseWriter, resp Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)

	if resp.Body == "" {
		return
	}
	if _, err := w.Write([]byte(resp.Body)); err != nil {
		logger.Error(ctx, err).Msg("httpx.Write: failed to write response body")
	}
}

// ReturnError classifies err, logs it at its own level with the full detail,
// and writes the client-safe envelope. Internal errors never leak their
// original message to the client.
func ReturnError(ctx context.Context, w http.ResponseWriter, returningErr error) {
	ae := apperr.Classify(returningErr)
	code := apperr.ClassOf(ae).HTTPStatus()
	if code == 0 {
		logger.Error(ctx, returningErr).Int("error_code", code).Msg("incorrect error code")
		code = http.StatusInternalServerError
	}
	logger.Error(ctx, returningErr).Str("error_code", ae.Code.String()).Msg("request failed")

	Write(ctx, w, Error(ae.Code, ae.UserMessage(), code))
}

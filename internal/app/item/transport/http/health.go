package http

import (
	"net/http"

	"github.com/itemkit/itemsapi/internal/infrastructure/httpx"
)

// Health reports liveness in the standard success envelope.
func Health(w http.ResponseWriter, r *http.Request) {
	httpx.Write(r.Context(), w, httpx.Success(map[string]string{"status": "ok"}, ""))
}

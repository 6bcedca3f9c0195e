package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itemkit/itemsapi/internal/infrastructure/httpx"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	httpx.Write(context.Background(), w, httpx.Success(map[string]string{"id": "1"}, "ok"))

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.JSONEq(t, `{"success":true,"data":{"id":"1"},"message":"ok"}`, w.Body.String())
}

func TestReturnError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	httpx.ReturnError(context.Background(), w, errors.New("item not found"))

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusNotFound, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "NOT_FOUND", body["error"])
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.RateLimit(httpx.RateLimitConfig{RequestsPerSecond: 1, Burst: 2})(next)

	status := func(remoteAddr string) int {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		r.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	require.Equal(t, http.StatusOK, status("10.0.0.1:1234"))
	require.Equal(t, http.StatusOK, status("10.0.0.1:1234"))

	// Burst exhausted for this IP.
	r := httptest.NewRequest(http.MethodGet, "/items", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "RATE_LIMIT_EXCEEDED", body["error"])

	// A different IP has its own bucket.
	require.Equal(t, http.StatusOK, status("10.0.0.2:1234"))
}

func TestMaxBodyBytes(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.MaxBodyBytes(8)(next)

	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("0123456789abcdef"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "BAD_REQUEST", body["error"])
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     bool
	}{
		{name: "valid", contentType: "application/json", body: `{"name":"a"}`},
		{name: "missing_content_type", contentType: "", body: `{}`, wantErr: true},
		{name: "wrong_content_type", contentType: "text/plain", body: `{}`, wantErr: true},
		{name: "malformed", contentType: "application/json", body: `{`, wantErr: true},
		{name: "trailing_value", contentType: "application/json", body: `{} {}`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(tt.body))
			if tt.contentType != "" {
				r.Header.Set("Content-Type", tt.contentType)
			}

			var v map[string]any
			err := httpx.DecodeJSON(r, &v)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDecodeJSON_KeepsNumbersAsJSONNumber(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"count": 3}`))
	r.Header.Set("Content-Type", "application/json")

	var v map[string]any
	require.NoError(t, httpx.DecodeJSON(r, &v))

	require.Equal(t, json.Number("3"), v["count"])
}

package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/itemkit/itemsapi/internal/app/item"
	"github.com/itemkit/itemsapi/internal/infrastructure/apperr"
	"github.com/itemkit/itemsapi/internal/infrastructure/httpx"
	"github.com/itemkit/itemsapi/internal/infrastructure/logger"
	"github.com/itemkit/itemsapi/internal/infrastructure/validation"
)

const (
	URLParamItemID = "item_id"

	defaultListLimit = 10
)

// Handler knows how to decode HTTP → service calls and encode responses.
type Handler struct {
	svc       Service
	validator Validator
}

type Service interface {
	CreateItem(ctx context.Context, req item.CreateItemReq) (item.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (item.Item, error)
	ListItems(ctx context.Context, q item.ListQuery) (item.ListResult, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req item.UpdateItemReq) (item.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type Validator interface {
	ValidateCreateRequest(body any) validation.Result
	ValidateUpdateRequest(body any) validation.Result
	ValidateListQuery(query any) validation.Result
}

func NewHandler(svc Service, validator Validator) *Handler {
	if svc == nil || validator == nil {
		panic("item HTTP handler: nil dependency")
	}
	return &Handler{svc: svc, validator: validator}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		logger.Error(ctx, err).Msg("item.Handler.Create: request json decode failed")
		httpx.ReturnError(ctx, w, err)
		return
	}

	if res := h.validator.ValidateCreateRequest(body); !res.Valid() {
		httpx.ReturnError(ctx, w, item.ErrValidation(res))
		return
	}

	req := item.CreateItemReq{
		Name:        stringField(body, item.FieldName.String()),
		Description: stringField(body, item.FieldDescription.String()),
	}

	itm, err := h.svc.CreateItem(ctx, req)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.Write(ctx, w, httpx.Created(itm, "Item created"))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	itm, err := h.svc.GetItem(ctx, id)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.Write(ctx, w, httpx.Success(itm, ""))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := make(map[string]any)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	if res := h.validator.ValidateListQuery(query); !res.Valid() {
		httpx.ReturnError(ctx, w, item.ErrValidation(res))
		return
	}

	q := item.ListQuery{Limit: defaultListLimit}
	if s, ok := query["limit"].(string); ok {
		q.Limit, _ = strconv.Atoi(s)
	}
	if s, ok := query["offset"].(string); ok {
		q.Offset, _ = strconv.Atoi(s)
	}
	if s, ok := query[item.FieldStatus.String()].(string); ok {
		status := item.Status(s)
		q.Status = &status
	}

	res, err := h.svc.ListItems(ctx, q)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.Write(ctx, w, httpx.Success(res, ""))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var body map[string]any
	if err := httpx.DecodeJSON(r, &body); err != nil {
		logger.Error(ctx, err).Msg("item.Handler.Update: request json decode failed")
		httpx.ReturnError(ctx, w, err)
		return
	}

	if res := h.validator.ValidateUpdateRequest(body); !res.Valid() {
		httpx.ReturnError(ctx, w, item.ErrValidation(res))
		return
	}

	var req item.UpdateItemReq
	if s, ok := fieldValue(body, item.FieldName.String()); ok {
		req.Name = &s
	}
	if s, ok := fieldValue(body, item.FieldDescription.String()); ok {
		req.Description = &s
	}
	if s, ok := fieldValue(body, item.FieldStatus.String()); ok {
		status := item.Status(s)
		req.Status = &status
	}

	itm, err := h.svc.UpdateItem(ctx, id, req)
	if err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.Write(ctx, w, httpx.Success(itm, "Item updated"))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(ctx, id); err != nil {
		httpx.ReturnError(ctx, w, err)
		return
	}

	httpx.Write(ctx, w, httpx.NoContent())
}

// Preflight answers CORS preflight requests with the standard headers.
func Preflight(w http.ResponseWriter, r *http.Request) {
	httpx.Write(r.Context(), w, httpx.Options())
}

// itemID validates and parses the path parameter, writing the error response
// itself when the value is unusable.
func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ctx := r.Context()

	raw := chi.URLParam(r, URLParamItemID)
	if res := item.ValidateIDParam(raw); !res.Valid() {
		httpx.ReturnError(ctx, w, item.ErrValidation(res))
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn(ctx, err).Str(item.FieldItemID.String(), raw).
			Msg("item.Handler: invalid item ID format")
		httpx.ReturnError(ctx, w, apperr.ErrBadRequest().WithDetail("item ID must be a valid UUID"))
		return uuid.Nil, false
	}

	return id, true
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func fieldValue(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)

	return s, ok
}

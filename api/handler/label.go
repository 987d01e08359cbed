package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskcal/backend/api/transport"
	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/pkg/httpcontext"
	labelUC "github.com/taskcal/backend/usecase/label"
)

type LabelHandler struct {
	baseHandler
	store *labelUC.Store
}

func NewLabelHandler(store *labelUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *LabelHandler {
	return &LabelHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List labels
// @Tags labels
// @Router /api/v1/labels [get]
func (h *LabelHandler) GetLabels(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.store.List(stdCtx))
}

// @Summary Create label
// @Tags labels
// @Router /api/v1/labels [post]
func (h *LabelHandler) CreateLabel(ctx *fasthttp.RequestCtx) {
	req, ok := h.parseLabel(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.store.Create(stdCtx, req.Name, req.Color)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update label
// @Tags labels
// @Router /api/v1/labels/{id} [put]
func (h *LabelHandler) UpdateLabel(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing label id", nil))
		return
	}

	req, ok := h.parseLabel(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.store.Update(stdCtx, id, req.Name, req.Color); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, domain.Label{ID: id, Name: req.Name, Color: req.Color})
}

// @Summary Delete label
// @Tags labels
// @Router /api/v1/labels/{id} [delete]
func (h *LabelHandler) DeleteLabel(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing label id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.store.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *LabelHandler) parseLabel(ctx *fasthttp.RequestCtx) (transport.LabelRequest, bool) {
	var req transport.LabelRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return transport.LabelRequest{}, false
	}
	return req, true
}

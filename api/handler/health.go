package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskcal/backend/api/transport"
	"github.com/taskcal/backend/internal/infrastructure/storage"
	"github.com/taskcal/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	store *storage.Store
}

func NewHealthHandler(store *storage.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	keys, err := h.store.Keys()

	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"storage": map[string]interface{}{
			"online": err == nil,
			"keys":   keys,
		},
	}

	if err != nil {
		h.logger.Error("storage health check failed", zap.Error(err))
		h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "storage unhealthy", payload))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}

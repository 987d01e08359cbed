package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskcal/backend/api/transport"
	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/pkg/httpcontext"
	taskUC "github.com/taskcal/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	store *taskUC.Store
}

func NewTaskHandler(store *taskUC.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.store.List(stdCtx))
}

// @Summary Create or update a task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) SaveTask(ctx *fasthttp.RequestCtx) {
	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	saved, err := h.store.CreateOrUpdate(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if task.ID == "" {
		status = http.StatusCreated
	}
	h.respondSuccess(ctx, status, saved)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	task, ok := h.parseTask(ctx)
	if !ok {
		return
	}

	if task.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			task.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.store.CreateOrUpdate(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Move task to another day
// @Tags tasks
// @Router /api/v1/tasks/{id}/move [post]
func (h *TaskHandler) MoveTask(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	var req transport.TaskMoveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	moved, err := h.store.Move(stdCtx, id, req.Date)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, moved)
}

// @Summary Import tasks from a JSON file
// @Tags tasks
// @Router /api/v1/tasks/import [post]
func (h *TaskHandler) ImportTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	count, err := h.store.Import(stdCtx, ctx.PostBody())
	if err != nil {
		h.logger.Warn("task import rejected", zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{"imported": count})
}

// @Summary Export tasks as a JSON download
// @Tags tasks
// @Router /api/v1/tasks/export [get]
func (h *TaskHandler) ExportTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	data, err := h.store.Export(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="tasks.json"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(data)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx) (domain.Task, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return domain.Task{}, false
	}

	return domain.Task{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		LabelIDs:    req.LabelIDs,
		Date:        req.Date,
	}, true
}

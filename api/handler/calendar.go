package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskcal/backend/api/transport"
	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/pkg/httpcontext"
	calendarUC "github.com/taskcal/backend/usecase/calendar"
	holidayUC "github.com/taskcal/backend/usecase/holiday"
)

type CalendarHandler struct {
	baseHandler
	calendar *calendarUC.Service
	holidays *holidayUC.Service
}

func NewCalendarHandler(calendar *calendarUC.Service, holidays *holidayUC.Service, adapter *httpcontext.Adapter, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		baseHandler: newBaseHandler(adapter, logger),
		calendar:    calendar,
		holidays:    holidays,
	}
}

// @Summary Month grid with holidays and filtered tasks
// @Tags calendar
// @Router /api/v1/calendar/{year}/{month} [get]
func (h *CalendarHandler) GetMonth(ctx *fasthttp.RequestCtx) {
	year, ok := h.pathInt(ctx, "year")
	if !ok {
		return
	}
	month, ok := h.pathInt(ctx, "month")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "month must be 1-12", nil))
		return
	}

	filter := calendarUC.Filter{
		Search:   string(ctx.QueryArgs().Peek("search")),
		LabelIDs: splitList(string(ctx.QueryArgs().Peek("labels"))),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	days := h.calendar.MonthGrid(stdCtx, year, time.Month(month), filter)
	h.respondSuccess(ctx, http.StatusOK, days)
}

// @Summary Cached worldwide holidays for a year
// @Tags calendar
// @Router /api/v1/holidays/{year} [get]
func (h *CalendarHandler) GetHolidays(ctx *fasthttp.RequestCtx) {
	year, ok := h.pathInt(ctx, "year")
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.holidays.FetchYear(stdCtx, year))
}

func (h *CalendarHandler) pathInt(ctx *fasthttp.RequestCtx, name string) (int, bool) {
	raw, _ := ctx.UserValue(name).(string)
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid "+name, nil))
		return 0, false
	}
	return value, true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

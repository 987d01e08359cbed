package calendar

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
)

// TaskLister supplies the current task list.
type TaskLister interface {
	List(ctx context.Context) []domain.Task
}

// LabelLister supplies the current label list.
type LabelLister interface {
	List(ctx context.Context) []domain.Label
}

// HolidayFetcher supplies the merged worldwide holidays of one year.
type HolidayFetcher interface {
	FetchYear(ctx context.Context, year int) []domain.Holiday
}

// Filter narrows the tasks shown on the grid. A task passes when its title
// case-insensitively contains Search (empty matches all) and its label set
// intersects LabelIDs (empty set matches all).
type Filter struct {
	Search   string
	LabelIDs []string
}

// DayTask is a task placed on a grid cell together with its resolved
// labels. Dangling label references resolve to nothing.
type DayTask struct {
	domain.Task
	Labels []domain.Label `json:"labels"`
}

// Day is one cell of the month grid.
type Day struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	InMonth     bool            `json:"inMonth"`
	Holiday     *domain.Holiday `json:"holiday,omitempty"`
	HolidayText string          `json:"holidayText,omitempty"`
	Tasks       []DayTask       `json:"tasks"`
}

// Service derives the visible month grid from the stores.
type Service struct {
	tasks     TaskLister
	labels    LabelLister
	holidays  HolidayFetcher
	weekStart time.Weekday
	logger    *zap.Logger
}

func New(tasks TaskLister, labels LabelLister, holidays HolidayFetcher, weekStart time.Weekday, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tasks:     tasks,
		labels:    labels,
		holidays:  holidays,
		weekStart: weekStart,
		logger:    logger,
	}
}

// MonthGrid returns the ordered day range spanning the first full week
// containing the 1st of the month through the last full week containing its
// last day: a 5-6 row, 7 column grid. Each day carries at most one holiday
// (first match by exact date) and the day's tasks after filtering.
func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month, filter Filter) []Day {
	// noon avoids day shifts when formatting across zones
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first, s.weekStart)
	end := startOfWeek(last, s.weekStart).AddDate(0, 0, 6)

	holidayByDate := make(map[string]domain.Holiday)
	for _, h := range s.holidays.FetchYear(ctx, year) {
		if _, ok := holidayByDate[h.Date]; !ok {
			holidayByDate[h.Date] = h
		}
	}

	labelByID := make(map[string]domain.Label)
	for _, l := range s.labels.List(ctx) {
		labelByID[l.ID] = l
	}

	tasksByDate := make(map[string][]DayTask)
	for _, t := range s.tasks.List(ctx) {
		if !matches(t, filter) {
			continue
		}
		tasksByDate[t.Date] = append(tasksByDate[t.Date], DayTask{
			Task:   t,
			Labels: resolveLabels(t.LabelIDs, labelByID),
		})
	}

	days := make([]Day, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		day := Day{
			Date:    date,
			InMonth: d.Month() == month,
			Tasks:   tasksByDate[date],
		}
		if day.Tasks == nil {
			day.Tasks = []DayTask{}
		}
		if h, ok := holidayByDate[date]; ok {
			holiday := h
			day.Holiday = &holiday
			day.HolidayText = holiday.DisplayName()
		}
		days = append(days, day)
	}
	return days
}

func matches(t domain.Task, filter Filter) bool {
	if filter.Search != "" &&
		!strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Search)) {
		return false
	}
	return t.HasAnyLabel(filter.LabelIDs)
}

// resolveLabels maps label IDs to labels, silently skipping unresolved
// references so dangling IDs render as no tag, never as an error.
func resolveLabels(ids []string, labelByID map[string]domain.Label) []domain.Label {
	resolved := make([]domain.Label, 0, len(ids))
	for _, id := range ids {
		if l, ok := labelByID[id]; ok {
			resolved = append(resolved, l)
		}
	}
	return resolved
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + 7) % 7
	return t.AddDate(0, 0, -diff)
}

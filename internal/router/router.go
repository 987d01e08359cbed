package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/taskcal/backend/api/handler"
)

type Handlers struct {
	Task     *apiHandler.TaskHandler
	Label    *apiHandler.LabelHandler
	Calendar *apiHandler.CalendarHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Task routes
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.SaveTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.POST("/api/v1/tasks/{id}/move", handlers.Task.MoveTask)
	r.POST("/api/v1/tasks/import", handlers.Task.ImportTasks)
	r.GET("/api/v1/tasks/export", handlers.Task.ExportTasks)

	// Label routes
	r.GET("/api/v1/labels", handlers.Label.GetLabels)
	r.POST("/api/v1/labels", handlers.Label.CreateLabel)
	r.PUT("/api/v1/labels/{id}", handlers.Label.UpdateLabel)
	r.DELETE("/api/v1/labels/{id}", handlers.Label.DeleteLabel)

	// Calendar routes
	r.GET("/api/v1/calendar/{year}/{month}", handlers.Calendar.GetMonth)
	r.GET("/api/v1/holidays/{year}", handlers.Calendar.GetHolidays)

	return r
}

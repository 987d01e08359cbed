package bolt

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/internal/infrastructure/storage"
)

const tasksKey = "tasks"

// TaskRepository stores the task list as one JSON-array blob under "tasks".
type TaskRepository struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewTaskRepository(store *storage.Store, logger *zap.Logger) *TaskRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskRepository{store: store, logger: logger}
}

// Load reads the persisted task list. An absent or unreadable blob loads as
// an empty list; a corrupt blob must never crash the application.
func (r *TaskRepository) Load(_ context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	ok, err := r.store.LoadJSON(tasksKey, &tasks)
	if err != nil {
		r.logger.Warn("discarding unreadable tasks blob", zap.Error(err))
		return []domain.Task{}, nil
	}
	if !ok || tasks == nil {
		return []domain.Task{}, nil
	}
	return tasks, nil
}

// Save overwrites the persisted task list.
func (r *TaskRepository) Save(_ context.Context, tasks []domain.Task) error {
	return r.store.SaveJSON(tasksKey, tasks)
}

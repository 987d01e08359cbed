package repository

import (
	"context"

	"github.com/taskcal/backend/domain"
)

// TaskRepository persists the full task list as a single blob. Save is an
// unconditional overwrite; there are no partial updates.
type TaskRepository interface {
	Load(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, tasks []domain.Task) error
}

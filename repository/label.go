package repository

import (
	"context"

	"github.com/taskcal/backend/domain"
)

// LabelRepository persists the full label list as a single blob.
type LabelRepository interface {
	Load(ctx context.Context) ([]domain.Label, error)
	Save(ctx context.Context, labels []domain.Label) error
}

package bolt

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/internal/infrastructure/storage"
)

const labelsKey = "labels"

// LabelRepository stores the label list as one JSON-array blob under "labels".
type LabelRepository struct {
	store  *storage.Store
	logger *zap.Logger
}

func NewLabelRepository(store *storage.Store, logger *zap.Logger) *LabelRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabelRepository{store: store, logger: logger}
}

// Load reads the persisted label list, falling back to an empty list when
// the blob is absent or unreadable.
func (r *LabelRepository) Load(_ context.Context) ([]domain.Label, error) {
	var labels []domain.Label
	ok, err := r.store.LoadJSON(labelsKey, &labels)
	if err != nil {
		r.logger.Warn("discarding unreadable labels blob", zap.Error(err))
		return []domain.Label{}, nil
	}
	if !ok || labels == nil {
		return []domain.Label{}, nil
	}
	return labels, nil
}

// Save overwrites the persisted label list.
func (r *LabelRepository) Save(_ context.Context, labels []domain.Label) error {
	return r.store.SaveJSON(labelsKey, labels)
}

package label

import (
	"context"
	"regexp"
	"sync"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/repository"
)

// Hex color pattern like #FF5733.
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Store is the authoritative in-memory label list plus its write-through
// persistence. Deleting a label never cascades: tasks keep dangling label
// IDs, which the view model renders as no tag.
type Store struct {
	repo   repository.LabelRepository
	logger *zap.Logger

	mu     sync.RWMutex
	labels []domain.Label
	loaded bool
}

func NewStore(repo repository.LabelRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:   repo,
		logger: logger,
	}
}

// Load hydrates the store from persistence. Persistence writes are
// suppressed until the initial load has completed.
func (s *Store) Load(ctx context.Context) error {
	labels, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = labels
	s.loaded = true
	return nil
}

// List returns a snapshot of the label list in insertion order.
func (s *Store) List(_ context.Context) []domain.Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Label(nil), s.labels...)
}

// Create appends a new label with a freshly minted ID.
func (s *Store) Create(ctx context.Context, name, color string) (domain.Label, error) {
	if err := validate(name, color); err != nil {
		return domain.Label{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := domain.Label{
		ID:    domain.NewID(),
		Name:  name,
		Color: color,
	}
	s.labels = append(s.labels, l)
	s.persist(ctx)
	return l, nil
}

// Update replaces the non-ID fields of the label with the given ID. An
// unknown ID is a no-op.
func (s *Store) Update(ctx context.Context, id, name, color string) error {
	if err := validate(name, color); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.labels {
		if s.labels[i].ID != id {
			continue
		}
		s.labels[i] = domain.Label{ID: id, Name: name, Color: color}
		s.persist(ctx)
		return nil
	}

	s.logger.Debug("ignoring update for unknown label id", zap.String("label_id", id))
	return nil
}

// Delete removes the label with the given ID. Task references to the
// deleted label are left in place. An unknown ID is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.labels {
		if s.labels[i].ID != id {
			continue
		}
		s.labels = append(s.labels[:i], s.labels[i+1:]...)
		s.persist(ctx)
		return nil
	}
	return nil
}

func (s *Store) persist(ctx context.Context) {
	if !s.loaded {
		return
	}
	if err := s.repo.Save(ctx, s.labels); err != nil {
		s.logger.Error("failed to persist labels", zap.Error(err))
	}
}

func validate(name, color string) error {
	if name == "" {
		return domain.ErrEmptyName
	}
	if !hexColorRegex.MatchString(color) {
		return domain.ErrInvalidColor
	}
	return nil
}

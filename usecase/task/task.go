package task

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
	"github.com/taskcal/backend/repository"
)

// Store is the authoritative in-memory task list plus its write-through
// persistence. Every mutation rewrites the full persisted blob; the
// persisted copy is always derived from memory, never the reverse, after
// the initial load.
type Store struct {
	repo   repository.TaskRepository
	logger *zap.Logger

	mu     sync.RWMutex
	tasks  []domain.Task
	loaded bool
}

func NewStore(repo repository.TaskRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		repo:   repo,
		logger: logger,
	}
}

// Load hydrates the store from persistence. Until Load has completed,
// mutations keep working in memory but persistence writes are suppressed,
// so an empty startup collection can never clobber previously saved data.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.loaded = true
	return nil
}

// List returns a snapshot of the task list in insertion order.
func (s *Store) List(_ context.Context) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

// CreateOrUpdate appends a new task when the ID is empty, minting a fresh
// identifier, or replaces the mutable fields of the existing task with that
// ID. An unknown non-empty ID is ignored without error.
func (s *Store) CreateOrUpdate(ctx context.Context, t domain.Task) (domain.Task, error) {
	if err := validate(t); err != nil {
		return domain.Task{}, err
	}
	t.LabelIDs = dedupeLabelIDs(t.LabelIDs)

	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = domain.NewID()
		s.tasks = append(s.tasks, t)
		s.persist(ctx)
		return t, nil
	}

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			s.persist(ctx)
			return t, nil
		}
	}

	s.logger.Debug("ignoring save for unknown task id", zap.String("task_id", t.ID))
	return t, nil
}

// Move relocates a task to a new date. The task keeps its position in the
// list, so per-day render order stays insertion order. The stored element
// is replaced with a fresh value rather than mutated in place.
func (s *Store) Move(ctx context.Context, id, date string) (domain.Task, error) {
	if !validDate(date) {
		return domain.Task{}, domain.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		moved := s.tasks[i]
		moved.Date = date
		s.tasks[i] = moved
		s.persist(ctx)
		return moved, nil
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (s *Store) persist(ctx context.Context) {
	if !s.loaded {
		return
	}
	if err := s.repo.Save(ctx, s.tasks); err != nil {
		s.logger.Error("failed to persist tasks", zap.Error(err))
	}
}

func validate(t domain.Task) error {
	if t.Title == "" {
		return domain.ErrEmptyTitle
	}
	if !validDate(t.Date) {
		return domain.ErrInvalidDate
	}
	return nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func dedupeLabelIDs(ids []string) []string {
	if len(ids) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

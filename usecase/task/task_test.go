package task

import (
	"context"
	"sync"
	"testing"

	"github.com/taskcal/backend/domain"
)

// fakeRepo is an in-memory TaskRepository recording every save.
type fakeRepo struct {
	mu      sync.Mutex
	stored  []domain.Task
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeRepo) Load(_ context.Context) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]domain.Task(nil), f.stored...), nil
}

func (f *fakeRepo) Save(_ context.Context, tasks []domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = append([]domain.Task(nil), tasks...)
	f.saves++
	return nil
}

func (f *fakeRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func newLoadedStore(t *testing.T) (*Store, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	store := NewStore(repo, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	return store, repo
}

func TestCreateAssignsFreshID(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	created, err := store.CreateOrUpdate(context.Background(), domain.Task{
		Title: "Ship release",
		Date:  "2025-03-14",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if created.ID == "" {
		t.Error("Expected a non-empty id to be assigned")
	}

	tasks := store.List(context.Background())
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Ship release" {
		t.Errorf("Expected title 'Ship release', got %q", tasks[0].Title)
	}
	if tasks[0].Date != "2025-03-14" {
		t.Errorf("Expected date '2025-03-14', got %q", tasks[0].Date)
	}
	if len(tasks[0].LabelIDs) != 0 {
		t.Errorf("Expected empty labelIds, got %v", tasks[0].LabelIDs)
	}
}

func TestCreateIDsAreUnique(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		created, err := store.CreateOrUpdate(context.Background(), domain.Task{
			Title: "Task",
			Date:  "2025-01-01",
		})
		if err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
		if seen[created.ID] {
			t.Fatalf("Duplicate id assigned: %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestUpdatePreservesIdentifier(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	first, err := store.CreateOrUpdate(context.Background(), domain.Task{
		Title: "Write docs",
		Date:  "2025-03-14",
	})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	other, err := store.CreateOrUpdate(context.Background(), domain.Task{
		Title: "Review PR",
		Date:  "2025-03-15",
	})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	updated, err := store.CreateOrUpdate(context.Background(), domain.Task{
		ID:          first.ID,
		Title:       "Write better docs",
		Description: "with examples",
		LabelIDs:    []string{"l1"},
		Date:        "2025-03-16",
	})
	if err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	if updated.ID != first.ID {
		t.Errorf("Expected id %q to be preserved, got %q", first.ID, updated.ID)
	}

	tasks := store.List(context.Background())
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Title != "Write better docs" || tasks[0].Description != "with examples" || tasks[0].Date != "2025-03-16" {
		t.Errorf("Expected all mutable fields replaced, got %+v", tasks[0])
	}
	if tasks[1].ID != other.ID || tasks[1].Title != "Review PR" {
		t.Errorf("Expected unrelated task untouched, got %+v", tasks[1])
	}
}

func TestSaveUnknownIDIsNoOp(t *testing.T) {
	t.Parallel()

	store, repo := newLoadedStore(t)

	if _, err := store.CreateOrUpdate(context.Background(), domain.Task{Title: "A", Date: "2025-01-01"}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	savesBefore := repo.saveCount()

	_, err := store.CreateOrUpdate(context.Background(), domain.Task{
		ID:    "deadbeef",
		Title: "Ghost",
		Date:  "2025-01-02",
	})
	if err != nil {
		t.Fatalf("Expected no error for unknown id, got %v", err)
	}

	tasks := store.List(context.Background())
	if len(tasks) != 1 {
		t.Fatalf("Expected list unchanged, got %d tasks", len(tasks))
	}
	if repo.saveCount() != savesBefore {
		t.Error("Expected no persistence write for an ignored save")
	}
}

func TestCreateValidation(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	testCases := []struct {
		name    string
		task    domain.Task
		wantErr error
	}{
		{"empty title", domain.Task{Title: "", Date: "2025-03-14"}, domain.ErrEmptyTitle},
		{"missing date", domain.Task{Title: "A", Date: ""}, domain.ErrInvalidDate},
		{"malformed date", domain.Task{Title: "A", Date: "14-03-2025"}, domain.ErrInvalidDate},
		{"impossible date", domain.Task{Title: "A", Date: "2025-02-30"}, domain.ErrInvalidDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.CreateOrUpdate(context.Background(), tc.task)
			if err != tc.wantErr {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(store.List(context.Background())) != 0 {
		t.Error("Expected no task created by invalid input")
	}
}

func TestLabelIDsDeduplicated(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	created, err := store.CreateOrUpdate(context.Background(), domain.Task{
		Title:    "A",
		Date:     "2025-01-01",
		LabelIDs: []string{"l1", "l2", "l1", "l2", "l3"},
	})
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	want := []string{"l1", "l2", "l3"}
	if len(created.LabelIDs) != len(want) {
		t.Fatalf("Expected %v, got %v", want, created.LabelIDs)
	}
	for i := range want {
		if created.LabelIDs[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, created.LabelIDs)
		}
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{stored: []domain.Task{
		{ID: "abc", Title: "Ship release", Date: "2025-03-14"},
		{ID: "def", Title: "Review PR", Date: "2025-03-14"},
	}}
	store := NewStore(repo, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	moved, err := store.Move(context.Background(), "abc", "2025-03-20")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if moved.Date != "2025-03-20" {
		t.Errorf("Expected date '2025-03-20', got %q", moved.Date)
	}

	tasks := store.List(context.Background())
	if tasks[0].ID != "abc" || tasks[0].Date != "2025-03-20" {
		t.Errorf("Expected task abc rescheduled in place, got %+v", tasks[0])
	}
	if tasks[1].ID != "def" || tasks[1].Date != "2025-03-14" {
		t.Errorf("Expected task def untouched, got %+v", tasks[1])
	}
}

func TestMoveUnknownTask(t *testing.T) {
	t.Parallel()

	store, _ := newLoadedStore(t)

	_, err := store.Move(context.Background(), "missing", "2025-03-20")
	if err != domain.ErrTaskNotFound {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestMoveInvalidDate(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{stored: []domain.Task{{ID: "abc", Title: "A", Date: "2025-03-14"}}}
	store := NewStore(repo, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	if _, err := store.Move(context.Background(), "abc", "not-a-date"); err != domain.ErrInvalidDate {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}
}

func TestPersistSuppressedUntilLoad(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{stored: []domain.Task{{ID: "abc", Title: "Existing", Date: "2025-01-01"}}}
	store := NewStore(repo, nil)

	// A mutation before the initial load must not clobber persisted data.
	if _, err := store.CreateOrUpdate(context.Background(), domain.Task{Title: "Early", Date: "2025-01-02"}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if repo.saveCount() != 0 {
		t.Fatal("Expected persistence writes to be suppressed before Load")
	}

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}
	if _, err := store.CreateOrUpdate(context.Background(), domain.Task{Title: "Late", Date: "2025-01-03"}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if repo.saveCount() != 1 {
		t.Errorf("Expected 1 persistence write after Load, got %d", repo.saveCount())
	}
	if len(repo.stored) != 2 {
		t.Errorf("Expected persisted copy with 2 tasks, got %d", len(repo.stored))
	}
}

func TestRoundTripThroughRepository(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	store := NewStore(repo, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	for _, title := range []string{"One", "Two", "Three"} {
		if _, err := store.CreateOrUpdate(context.Background(), domain.Task{
			Title:    title,
			Date:     "2025-06-01",
			LabelIDs: []string{"l1"},
		}); err != nil {
			t.Fatalf("Failed to create task: %v", err)
		}
	}
	before := store.List(context.Background())

	reloaded := NewStore(repo, nil)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("Failed to reload store: %v", err)
	}
	after := reloaded.List(context.Background())

	if len(after) != len(before) {
		t.Fatalf("Expected %d tasks after reload, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID || after[i].Title != before[i].Title || after[i].Date != before[i].Date {
			t.Errorf("Task %d differs after reload: %+v vs %+v", i, before[i], after[i])
		}
	}
}

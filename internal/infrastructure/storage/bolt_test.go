package storage

import (
	"path/filepath"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "planner.db"), "planner")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadJSON(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	saved := []record{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}
	if err := store.SaveJSON("records", saved); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var loaded []record
	ok, err := store.LoadJSON("records", &loaded)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if !ok {
		t.Fatal("Expected the key to exist")
	}
	if len(loaded) != 2 || loaded[0] != saved[0] || loaded[1] != saved[1] {
		t.Errorf("Round trip mismatch: %+v vs %+v", loaded, saved)
	}
}

func TestLoadJSONAbsentKey(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	var loaded []record
	ok, err := store.LoadJSON("missing", &loaded)
	if err != nil {
		t.Fatalf("Expected no error for an absent key, got %v", err)
	}
	if ok {
		t.Error("Expected ok=false for an absent key")
	}
}

func TestLoadJSONMismatchedShape(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if err := store.SaveJSON("records", "not an array"); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var loaded []record
	if _, err := store.LoadJSON("records", &loaded); err == nil {
		t.Error("Expected an error when the stored blob does not match the target shape")
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if err := store.SaveJSON("records", []record{{ID: "1"}, {ID: "2"}}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := store.SaveJSON("records", []record{{ID: "3"}}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	var loaded []record
	if _, err := store.LoadJSON("records", &loaded); err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "3" {
		t.Errorf("Expected full overwrite, got %+v", loaded)
	}
}

func TestDeleteAndKeys(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	if err := store.SaveJSON("a", []record{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := store.SaveJSON("b", []record{}); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Failed to count keys: %v", err)
	}
	if keys != 2 {
		t.Errorf("Expected 2 keys, got %d", keys)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if err := store.Delete("a"); err != nil {
		t.Fatalf("Expected deleting an absent key to be a no-op, got %v", err)
	}

	keys, err = store.Keys()
	if err != nil {
		t.Fatalf("Failed to count keys: %v", err)
	}
	if keys != 1 {
		t.Errorf("Expected 1 key after delete, got %d", keys)
	}
}

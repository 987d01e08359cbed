package domain

// Task is a user-created calendar entry pinned to a single day.
//
// A Task with an empty ID is a draft that has not been persisted yet. Once
// an ID has been assigned it is never reassigned.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LabelIDs    []string `json:"labelIds"`
	Date        string   `json:"date"` // YYYY-MM-DD
}

// HasLabel reports whether the task references the given label ID.
func (t *Task) HasLabel(labelID string) bool {
	if t == nil {
		return false
	}
	for _, id := range t.LabelIDs {
		if id == labelID {
			return true
		}
	}
	return false
}

// HasAnyLabel reports whether the task references at least one of the given
// label IDs. An empty filter set matches every task.
func (t *Task) HasAnyLabel(labelIDs []string) bool {
	if len(labelIDs) == 0 {
		return true
	}
	for _, id := range labelIDs {
		if t.HasLabel(id) {
			return true
		}
	}
	return false
}

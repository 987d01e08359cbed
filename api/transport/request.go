package transport

// TaskRequest is the wire shape of a task save. An empty id creates a new
// task; a known id replaces the existing task's mutable fields.
type TaskRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	LabelIDs    []string `json:"labelIds"`
	Date        string   `json:"date"`
}

// TaskMoveRequest reschedules a task to a new day (drag-and-drop drop).
type TaskMoveRequest struct {
	Date string `json:"date"`
}

// LabelRequest is the wire shape of a label create or update.
type LabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

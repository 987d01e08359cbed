package domain

// Label is a user-defined named, colored tag applicable to tasks.
// Task references to labels are soft: deleting a label leaves dangling
// label IDs on tasks, which render as no tag.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // hex string, #RRGGBB
}

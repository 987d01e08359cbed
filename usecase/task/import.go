package task

import (
	"context"
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"

	"github.com/taskcal/backend/domain"
)

// importSchema validates an uploaded task file before any mutation happens.
// It mirrors the task form rules: title and date required, labelIds a list
// of strings. Incoming IDs are allowed but discarded on import.
var importSchema = jsonschema.MustCompileString("tasks-import.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"id": {"type": "string"},
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"labelIds": {"type": "array", "items": {"type": "string"}},
			"date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
		},
		"required": ["title", "date"]
	}
}`)

// Import appends every task in the given JSON array to the list, assigning
// each a freshly minted ID regardless of what the file carried. Import is
// strictly additive. A parse or schema failure aborts with zero mutation
// and reports the number of imported tasks as 0.
func (s *Store) Import(ctx context.Context, data []byte) (int, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, domain.WrapError(domain.ErrCodeInvalid, "import file is not valid JSON", err)
	}
	if err := importSchema.Validate(doc); err != nil {
		return 0, domain.WrapError(domain.ErrCodeInvalid, "import file does not match the task schema", err)
	}

	var incoming []domain.Task
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, domain.WrapError(domain.ErrCodeInvalid, "import file does not match the task schema", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range incoming {
		t.ID = domain.NewID()
		t.LabelIDs = dedupeLabelIDs(t.LabelIDs)
		s.tasks = append(s.tasks, t)
	}
	s.persist(ctx)

	s.logger.Info("imported tasks", zap.Int("count", len(incoming)))
	return len(incoming), nil
}

// Export serializes the current task list verbatim as a JSON array.
func (s *Store) Export(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.tasks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.tasks)
}

package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/models"
)

// JSONFileRepository stores each user's task sequence as a JSON array in
// tasks_<username>.json under the data directory.
type JSONFileRepository struct {
	dir string
}

func NewJSONFileRepository(dir string) *JSONFileRepository {
	return &JSONFileRepository{dir: dir}
}

// Path returns the task file location for username.
func (r *JSONFileRepository) Path(username string) string {
	return filepath.Join(r.dir, fmt.Sprintf("tasks_%s.json", username))
}

// Load reads the user's task sequence. A missing file is a fresh start and
// yields an empty sequence. An unreadable or unparsable file also yields an
// empty sequence, with an error wrapping common.ErrCorrupted; corrupt data
// is indistinguishable from a new user once the caller proceeds, so the
// error exists for observability only.
func (r *JSONFileRepository) Load(ctx context.Context, username string) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.Path(username)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return []models.Task{}, fmt.Errorf("%w: read %s: %v", common.ErrCorrupted, path, err)
	}

	var seq []models.Task
	if err := json.Unmarshal(data, &seq); err != nil {
		return []models.Task{}, fmt.Errorf("%w: parse %s: %v", common.ErrCorrupted, path, err)
	}
	if seq == nil {
		seq = []models.Task{}
	}
	return seq, nil
}

// Save overwrites the user's task file with the full sequence.
func (r *JSONFileRepository) Save(ctx context.Context, username string, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.Path(username)

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return common.NewPersistenceError(path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return common.NewPersistenceError(path, err)
	}
	return nil
}

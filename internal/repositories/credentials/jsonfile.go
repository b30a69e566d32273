package credentials

import (
	"context"
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/taskdesk/internal/common"
	"github.com/dmitrijs2005/taskdesk/internal/models"
)

// JSONFileRepository stores the credential mapping in one JSON file.
type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// Load reads the credential mapping. A missing, unreadable, or malformed
// file degrades to an empty mapping so a fresh install starts clean.
func (r *JSONFileRepository) Load(ctx context.Context) (map[string]models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	accounts := make(map[string]models.Account)

	data, err := os.ReadFile(r.path)
	if err != nil {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return make(map[string]models.Account), nil
	}
	return accounts, nil
}

// Save overwrites the credential file with the full mapping.
func (r *JSONFileRepository) Save(ctx context.Context, accounts map[string]models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return common.NewPersistenceError(r.path, err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return common.NewPersistenceError(r.path, err)
	}
	return nil
}

package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskdesk/internal/models"
)

// Repository persists one task sequence per username.
//
// Contract:
//   - Load returns the persisted sequence. An absent file yields an empty
//     sequence with no error. An unreadable or malformed file also yields an
//     empty sequence, but with an error wrapping common.ErrCorrupted so the
//     caller can log the degradation; the caller is expected to proceed.
//   - Save overwrites the user's whole file. Write failures are reported as
//     *common.PersistenceError.
type Repository interface {
	Load(ctx context.Context, username string) ([]models.Task, error)
	Save(ctx context.Context, username string, tasks []models.Task) error
}

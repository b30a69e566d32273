package credentials

import (
	"context"

	"github.com/dmitrijs2005/taskdesk/internal/models"
)

// Repository persists the shared username→account mapping.
//
// Contract:
//   - Load never fails the caller: an absent or unreadable credential file
//     yields an empty mapping.
//   - Save overwrites the whole file; last write wins. Write failures are
//     reported as *common.PersistenceError.
type Repository interface {
	Load(ctx context.Context) (map[string]models.Account, error)
	Save(ctx context.Context, accounts map[string]models.Account) error
}

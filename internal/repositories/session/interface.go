package session

import (
	"context"

	"github.com/geniastudio/genia/internal/models"
)

// Repository persists the single device session.
//
// One device holds at most one session record. Logging out only clears the
// active flag; the record stays so a later login rehydrates the same
// account. Get returns common.ErrNotFound on a fresh device.
type Repository interface {
	// Get loads the device session and whether it is currently active
	// (logged in).
	Get(ctx context.Context) (*models.Session, bool, error)

	// Save writes the session and marks it active, replacing any previous
	// record.
	Save(ctx context.Context, s *models.Session) error

	// MarkActive flips the logged-in flag without touching account data.
	// Returns common.ErrNotFound when no record exists.
	MarkActive(ctx context.Context, active bool) error
}

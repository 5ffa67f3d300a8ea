// Package staff declares the repository contract for staff members and its
// PostgreSQL implementation.
package staff

import (
	"context"

	"github.com/dmitrijs2005/staffscore/internal/server/models"
)

// Repository persists and looks up staff members.
type Repository interface {
	// Create inserts m and sets m.ID. A duplicate email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, m *models.Staff) (*models.Staff, error)
	// GetByEmail returns common.ErrorNotFound when no staff member has the email.
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	// GetByID returns common.ErrorNotFound when the id is unknown.
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

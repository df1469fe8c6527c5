package ports

import (
	"context"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts,
// including maintenance of the appointment back-reference lists.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrDuplicateUsername when
	// the username is already taken (unique index on username).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs fetches the given users in a single query. Missing ids are
	// silently omitted from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)

	// PushAppointment appends an appointment id to the user's list.
	// The append is atomic within the user document.
	PushAppointment(ctx context.Context, userID, appointmentID string) error
	// PullAppointment removes every occurrence of an appointment id from
	// the user's list.
	PullAppointment(ctx context.Context, userID, appointmentID string) error
}

package ports

import (
	"context"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// RegisterInput carries the registration payload from the transport layer.
// Specialty applies only when Role is doctor, Age only when Role is
// patient; the service strips whichever does not match.
type RegisterInput struct {
	Username  string
	Password  string
	Role      string
	Specialty string
	Age       int
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed session token
	// together with the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Profile returns the user's own record, password hash excluded from
	// serialization.
	Profile(ctx context.Context, id string) (*domain.User, error)
}

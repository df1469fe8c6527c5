package ports

import (
	"context"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// DirectoryService provides read-only role-filtered user listings.
type DirectoryService interface {
	ListDoctors(ctx context.Context) ([]*domain.User, error)
	ListPatients(ctx context.Context) ([]*domain.User, error)
}

package ports

import (
	"context"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// FindByIDs fetches the given appointments in a single query. Missing
	// ids are silently omitted from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Appointment, error)
	// Delete removes the appointment record. Returns
	// domain.ErrAppointmentNotFound when no document matched.
	Delete(ctx context.Context, id string) error
}

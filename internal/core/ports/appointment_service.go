package ports

import (
	"context"
	"time"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// BookAppointmentInput carries the data needed to book an appointment.
// PatientID is always the authenticated requester, never client-supplied.
type BookAppointmentInput struct {
	PatientID   string
	DoctorID    string
	Date        time.Time
	Description string
}

// ParticipantSummary is the doctor/patient view embedded in listings.
type ParticipantSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Specialty string `json:"specialty,omitempty"`
	Age       int    `json:"age,omitempty"`
}

// AppointmentView is a single listing entry with both participants
// expanded for display.
type AppointmentView struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Doctor      ParticipantSummary `json:"doctor"`
	Patient     ParticipantSummary `json:"patient"`
}

// AppointmentService defines the booking lifecycle use cases.
type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	// Cancel deletes the appointment and removes it from both
	// participants' lists. Only the booking patient may cancel; anyone
	// else gets domain.ErrForbidden.
	Cancel(ctx context.Context, requesterID, appointmentID string) error
	// List returns the requester's appointments in booking order.
	List(ctx context.Context, requesterID string) ([]AppointmentView, error)
}

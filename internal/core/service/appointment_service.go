package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/careconnect/appointment-system/internal/api/metrics"
	"github.com/careconnect/appointment-system/internal/core/domain"
	"github.com/careconnect/appointment-system/internal/core/ports"
)

// AppointmentService orchestrates the booking lifecycle. Each appointment
// is referenced from both the doctor's and the patient's appointment
// lists; the list updates are atomic per user document but not wrapped in
// a cross-document transaction, so a failure between writes leaves the
// earlier writes committed and surfaces as a persistence error.
type AppointmentService struct {
	users        ports.UserRepository
	appointments ports.AppointmentRepository
	log          zerolog.Logger
}

func NewAppointmentService(users ports.UserRepository, appointments ports.AppointmentRepository, log zerolog.Logger) *AppointmentService {
	return &AppointmentService{users: users, appointments: appointments, log: log}
}

// Book creates an appointment between the requesting patient and the
// given doctor and appends its id to both users' lists. No conflict
// detection is performed; overlapping bookings for the same doctor are
// all accepted.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	patient, err := s.users.FindByID(ctx, in.PatientID)
	if err != nil {
		return nil, fmt.Errorf("book: resolve patient: %w", err)
	}
	doctor, err := s.users.FindByID(ctx, in.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("book: resolve doctor: %w", err)
	}

	appointment, err := s.appointments.Create(ctx, &domain.Appointment{
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		Date:        in.Date,
		Description: in.Description,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create appointment")
		return nil, err
	}

	if err := s.users.PushAppointment(ctx, doctor.ID, appointment.ID); err != nil {
		return nil, fmt.Errorf("book: link doctor: %w", err)
	}
	if err := s.users.PushAppointment(ctx, patient.ID, appointment.ID); err != nil {
		return nil, fmt.Errorf("book: link patient: %w", err)
	}

	metrics.AppointmentsBookedTotal.Inc()
	s.log.Info().
		Str("appointment_id", appointment.ID).
		Str("doctor_id", doctor.ID).
		Str("patient_id", patient.ID).
		Msg("appointment booked")

	return appointment, nil
}

// Cancel removes the appointment from both participants' lists and
// deletes the record. Only the booking patient may cancel.
func (s *AppointmentService) Cancel(ctx context.Context, requesterID, appointmentID string) error {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return fmt.Errorf("cancel: resolve requester: %w", err)
	}
	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("cancel: %w", err)
	}
	if appointment.PatientID != requesterID {
		return domain.ErrForbidden
	}

	if err := s.users.PullAppointment(ctx, appointment.DoctorID, appointment.ID); err != nil {
		return fmt.Errorf("cancel: unlink doctor: %w", err)
	}
	if err := s.users.PullAppointment(ctx, appointment.PatientID, appointment.ID); err != nil {
		return fmt.Errorf("cancel: unlink patient: %w", err)
	}
	if err := s.appointments.Delete(ctx, appointment.ID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}

	metrics.AppointmentsCancelledTotal.Inc()
	s.log.Info().
		Str("appointment_id", appointment.ID).
		Str("patient_id", requesterID).
		Msg("appointment cancelled")

	return nil
}

// List returns the requester's appointments in booking order, with both
// participants expanded for display.
func (s *AppointmentService) List(ctx context.Context, requesterID string) ([]ports.AppointmentView, error) {
	user, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list: resolve requester: %w", err)
	}

	appointments, err := s.appointments.FindByIDs(ctx, user.Appointments)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	byID := make(map[string]*domain.Appointment, len(appointments))
	participantIDs := make([]string, 0, 2*len(appointments))
	for _, a := range appointments {
		byID[a.ID] = a
		participantIDs = append(participantIDs, a.DoctorID, a.PatientID)
	}

	participants, err := s.users.FindByIDs(ctx, participantIDs)
	if err != nil {
		return nil, fmt.Errorf("list: expand participants: %w", err)
	}
	summaries := make(map[string]ports.ParticipantSummary, len(participants))
	for _, p := range participants {
		summaries[p.ID] = ports.ParticipantSummary{
			ID:        p.ID,
			Username:  p.Username,
			Specialty: p.Specialty,
			Age:       p.Age,
		}
	}

	// Walk the user's back-reference list so the result keeps booking
	// order; dangling references are skipped.
	views := make([]ports.AppointmentView, 0, len(user.Appointments))
	for _, id := range user.Appointments {
		a, ok := byID[id]
		if !ok {
			s.log.Warn().Str("appointment_id", id).Str("user_id", user.ID).Msg("dangling appointment reference")
			continue
		}
		views = append(views, ports.AppointmentView{
			ID:          a.ID,
			Date:        a.Date,
			Description: a.Description,
			Doctor:      summaries[a.DoctorID],
			Patient:     summaries[a.PatientID],
		})
	}
	return views, nil
}

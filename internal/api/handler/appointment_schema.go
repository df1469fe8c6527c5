package handler

import (
	"time"

	"github.com/careconnect/appointment-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type bookAppointmentRequest struct {
	DoctorID    string `json:"doctorId"    validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

type appointmentResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	PatientID   string    `json:"patientId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

type listAppointmentsResponse struct {
	Appointments []ports.AppointmentView `json:"appointments"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// dateLayouts are the accepted formats for the booking date, tried in
// order. Clients may send either a full timestamp or a bare date.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

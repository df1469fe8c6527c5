package domain

import (
	"errors"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrForbidden = errors.New("access forbidden")

// Appointment links one doctor and one patient at a point in time. A
// record is immutable after creation; cancellation deletes it outright,
// so there is no status field to transition.
type Appointment struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	PatientID   string    `json:"patientId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

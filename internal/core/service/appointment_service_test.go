package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/careconnect/appointment-system/internal/core/domain"
	"github.com/careconnect/appointment-system/internal/core/ports"
)

func seedUsers(repo *stubUserRepo) (doctor, patient *domain.User) {
	doctor, _ = repo.Create(context.Background(), &domain.User{
		Username: "drA", Role: domain.RoleDoctor, Specialty: "Cardiology",
	})
	patient, _ = repo.Create(context.Background(), &domain.User{
		Username: "ptB", Role: domain.RolePatient, Age: 40,
	})
	return doctor, patient
}

func countOccurrences(ids []string, id string) int {
	n := 0
	for _, v := range ids {
		if v == id {
			n++
		}
	}
	return n
}

func TestAppointmentService_Book_Success(t *testing.T) {
	users := newStubUserRepo()
	appointments := newStubAppointmentRepo()
	doctor, patient := seedUsers(users)
	svc := NewAppointmentService(users, appointments, zerolog.Nop())

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	appointment, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		Date:        date,
		Description: "checkup",
	})
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appointment.ID == "" {
		t.Fatalf("expected generated appointment id")
	}
	if appointment.DoctorID != doctor.ID || appointment.PatientID != patient.ID {
		t.Fatalf("unexpected participants: %+v", appointment)
	}

	// The id must appear exactly once in both back-reference lists.
	d, _ := users.FindByID(context.Background(), doctor.ID)
	p, _ := users.FindByID(context.Background(), patient.ID)
	if countOccurrences(d.Appointments, appointment.ID) != 1 {
		t.Fatalf("doctor list: %v", d.Appointments)
	}
	if countOccurrences(p.Appointments, appointment.ID) != 1 {
		t.Fatalf("patient list: %v", p.Appointments)
	}

	// Discoverable via both users' listings.
	for _, id := range []string{doctor.ID, patient.ID} {
		views, err := svc.List(context.Background(), id)
		if err != nil {
			t.Fatalf("List(%s) failed: %v", id, err)
		}
		if len(views) != 1 || views[0].ID != appointment.ID || views[0].Description != "checkup" {
			t.Fatalf("List(%s): %+v", id, views)
		}
	}
}

func TestAppointmentService_Book_UnknownDoctor(t *testing.T) {
	users := newStubUserRepo()
	_, patient := seedUsers(users)
	svc := NewAppointmentService(users, newStubAppointmentRepo(), zerolog.Nop())

	_, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  "missing",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppointmentService_Book_UnknownRequester(t *testing.T) {
	users := newStubUserRepo()
	doctor, _ := seedUsers(users)
	svc := NewAppointmentService(users, newStubAppointmentRepo(), zerolog.Nop())

	_, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: "missing",
		DoctorID:  doctor.ID,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppointmentService_Book_PartialLinkFailure(t *testing.T) {
	users := newStubUserRepo()
	appointments := newStubAppointmentRepo()
	doctor, patient := seedUsers(users)
	users.pushErrFor[patient.ID] = errors.New("write failed")
	svc := NewAppointmentService(users, appointments, zerolog.Nop())

	_, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Date:      time.Now(),
	})
	if err == nil {
		t.Fatalf("expected error from failed patient link")
	}

	// Earlier writes stay committed: the appointment exists and the
	// doctor's reference was saved before the failure.
	d, _ := users.FindByID(context.Background(), doctor.ID)
	if len(d.Appointments) != 1 {
		t.Fatalf("doctor list: %v", d.Appointments)
	}
	if len(appointments.appointments) != 1 {
		t.Fatalf("expected appointment record to remain")
	}
}

func TestAppointmentService_Cancel_Success(t *testing.T) {
	users := newStubUserRepo()
	appointments := newStubAppointmentRepo()
	doctor, patient := seedUsers(users)
	svc := NewAppointmentService(users, appointments, zerolog.Nop())

	appointment, err := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: time.Now(), Description: "checkup",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if err := svc.Cancel(context.Background(), patient.ID, appointment.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	d, _ := users.FindByID(context.Background(), doctor.ID)
	p, _ := users.FindByID(context.Background(), patient.ID)
	if len(d.Appointments) != 0 || len(p.Appointments) != 0 {
		t.Fatalf("expected both lists empty, got %v / %v", d.Appointments, p.Appointments)
	}
	if _, err := appointments.FindByID(context.Background(), appointment.ID); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected record deleted, got %v", err)
	}

	views, err := svc.List(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty listing, got %+v", views)
	}
}

func TestAppointmentService_Cancel_ForbiddenForDoctor(t *testing.T) {
	users := newStubUserRepo()
	appointments := newStubAppointmentRepo()
	doctor, patient := seedUsers(users)
	svc := NewAppointmentService(users, appointments, zerolog.Nop())

	appointment, _ := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Date: time.Now(),
	})

	if err := svc.Cancel(context.Background(), doctor.ID, appointment.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// State must be untouched: still listed for both parties.
	for _, id := range []string{doctor.ID, patient.ID} {
		views, _ := svc.List(context.Background(), id)
		if len(views) != 1 {
			t.Fatalf("List(%s) after forbidden cancel: %+v", id, views)
		}
	}
	if _, err := appointments.FindByID(context.Background(), appointment.ID); err != nil {
		t.Fatalf("appointment should still exist: %v", err)
	}
}

func TestAppointmentService_Cancel_NotFound(t *testing.T) {
	users := newStubUserRepo()
	_, patient := seedUsers(users)
	svc := NewAppointmentService(users, newStubAppointmentRepo(), zerolog.Nop())

	if err := svc.Cancel(context.Background(), patient.ID, "missing"); !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if err := svc.Cancel(context.Background(), "missing", "whatever"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAppointmentService_List_OrderAndExpansion(t *testing.T) {
	users := newStubUserRepo()
	appointments := newStubAppointmentRepo()
	doctor, patient := seedUsers(users)
	svc := NewAppointmentService(users, appointments, zerolog.Nop())

	first, _ := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Description: "checkup",
	})
	second, _ := svc.Book(context.Background(), ports.BookAppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		Date: time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), Description: "follow-up",
	})

	views, err := svc.List(context.Background(), patient.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 2 || views[0].ID != first.ID || views[1].ID != second.ID {
		t.Fatalf("expected booking order, got %+v", views)
	}

	v := views[0]
	if v.Doctor.Username != "drA" || v.Doctor.Specialty != "Cardiology" {
		t.Fatalf("doctor not expanded: %+v", v.Doctor)
	}
	if v.Patient.Username != "ptB" || v.Patient.Age != 40 {
		t.Fatalf("patient not expanded: %+v", v.Patient)
	}
}

func TestAppointmentService_List_UnknownUser(t *testing.T) {
	svc := NewAppointmentService(newStubUserRepo(), newStubAppointmentRepo(), zerolog.Nop())

	if _, err := svc.List(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

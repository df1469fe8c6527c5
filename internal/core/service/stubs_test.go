package service

import (
	"context"
	"fmt"

	"github.com/careconnect/appointment-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories and cache
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users      map[string]*domain.User // keyed by id
	seq        int
	listCalls  int
	pushErrFor map[string]error // userID -> error returned by PushAppointment
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:      make(map[string]*domain.User),
		pushErrFor: make(map[string]error),
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Appointments = append([]string(nil), u.Appointments...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	r.seq++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	seen := make(map[string]bool, len(ids))
	var out []*domain.User
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	r.listCalls++
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) PushAppointment(_ context.Context, userID, appointmentID string) error {
	if err := r.pushErrFor[userID]; err != nil {
		return err
	}
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Appointments = append(u.Appointments, appointmentID)
	return nil
}

func (r *stubUserRepo) PullAppointment(_ context.Context, userID, appointmentID string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	kept := u.Appointments[:0]
	for _, id := range u.Appointments {
		if id != appointmentID {
			kept = append(kept, id)
		}
	}
	u.Appointments = kept
	return nil
}

type stubAppointmentRepo struct {
	appointments map[string]*domain.Appointment
	seq          int
	createErr    error
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("appt-%d", r.seq)
	r.appointments[clone.ID] = &clone
	copied := clone
	return &copied, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, id := range ids {
		if a, ok := r.appointments[id]; ok {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

type stubDirectoryCache struct {
	entries     map[string][]*domain.User
	getErr      error
	setErr      error
	invalidated []string
}

func newStubDirectoryCache() *stubDirectoryCache {
	return &stubDirectoryCache{entries: make(map[string][]*domain.User)}
}

func (c *stubDirectoryCache) Get(_ context.Context, role string) ([]*domain.User, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[role], nil
}

func (c *stubDirectoryCache) Set(_ context.Context, role string, users []*domain.User) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[role] = users
	return nil
}

func (c *stubDirectoryCache) Invalidate(_ context.Context, role string) error {
	c.invalidated = append(c.invalidated, role)
	delete(c.entries, role)
	return nil
}

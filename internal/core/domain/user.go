package domain

import "errors"

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("role must be doctor or patient")

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleDoctor || role == RolePatient
}

// User models a registered account. Specialty is populated only for
// doctors and Age only for patients; registration strips whichever does
// not apply. Appointments holds back-references (appointment ids) in
// booking order; the appointment documents themselves live in their own
// collection.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         string   `json:"role"`
	Specialty    string   `json:"specialty,omitempty"`
	Age          int      `json:"age,omitempty"`
	Appointments []string `json:"appointments"`
}

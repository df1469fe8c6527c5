package handler

import "github.com/careconnect/appointment-system/internal/core/domain"

type registerRequest struct {
	Username  string `json:"username"  validate:"required,min=3"`
	Password  string `json:"password"  validate:"required,min=6"`
	Role      string `json:"role"      validate:"required,oneof=doctor patient"`
	Specialty string `json:"specialty"`
	Age       int    `json:"age"       validate:"omitempty,gte=0,lte=150"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careconnect/appointment-system/internal/core/domain"
	"github.com/careconnect/appointment-system/internal/core/ports"
)

// DirectoryHandler serves the public role-filtered user listings.
type DirectoryHandler struct {
	service ports.DirectoryService
}

func NewDirectoryHandler(service ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

type directoryResponse struct {
	Users []*domain.User `json:"users"`
}

// Doctors handles GET /users/doctors.
//
// @Summary      List all doctors
// @Tags         users
// @Produce      json
// @Success      200  {object}  directoryResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/doctors [get]
func (h *DirectoryHandler) Doctors(c echo.Context) error {
	users, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, directoryResponse{Users: users})
}

// Patients handles GET /users/patients.
//
// @Summary      List all patients
// @Tags         users
// @Produce      json
// @Success      200  {object}  directoryResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/patients [get]
func (h *DirectoryHandler) Patients(c echo.Context) error {
	users, err := h.service.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, directoryResponse{Users: users})
}

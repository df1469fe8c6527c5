package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careconnect/appointment-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the booking lifecycle.
// Domain errors propagate to the central HTTP error handler.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Book handles POST /appointments.
//
// @Summary      Book an appointment with a doctor
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Booking details; date accepts RFC3339 or YYYY-MM-DD"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
	}

	requesterID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	appointment, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		PatientID:   requesterID,
		DoctorID:    req.DoctorID,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, appointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		Date:        appointment.Date,
		Description: appointment.Description,
	})
}

// Cancel handles DELETE /appointments/:id.
//
// @Summary      Cancel an appointment booked by the requester
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	requesterID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), requesterID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "appointment cancelled"})
}

// List handles GET /appointments.
//
// @Summary      List the requester's appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAppointmentsResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	requesterID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), requesterID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAppointmentsResponse{Appointments: views})
}

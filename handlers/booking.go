package handlers

import (
	"net/http"

	"carebook/models"
	"carebook/services/booking"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes slot computation and the appointment ledger.
type BookingHandler struct {
	Service booking.BookingService
}

// bookingErrorStatus maps a booking error code to its HTTP status. Conflicts
// with another booking are 409; a closed or out-of-window request is 422.
func bookingErrorStatus(code string) int {
	switch code {
	case booking.CodeInvalidInput:
		return http.StatusBadRequest
	case booking.CodeProviderUnavailable, booking.CodeOutsideWorkingHours:
		return http.StatusUnprocessableEntity
	case booking.CodeSlotAlreadyBooked, booking.CodeConcurrencyConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondBookingError writes a taxonomy error, or a generic 500 for faults.
func respondBookingError(c *gin.Context, err error, fallback string) {
	if be, ok := booking.AsBookingError(err); ok {
		c.JSON(bookingErrorStatus(be.Code), gin.H{"error": be.Message, "code": be.Code})
		return
	}
	utils.GetLogger().Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	providerID := c.Param("id")
	date := c.Query("date")
	if providerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID or date"})
		return
	}

	resp, err := h.Service.ComputeSlots(c.Request.Context(), providerID, date)
	if err != nil {
		respondBookingError(c, err, "Failed to compute slots")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	userID, ok := callerID(c, "userID")
	if !ok {
		return
	}

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.TryBook(c.Request.Context(), userID, req)
	if err != nil {
		respondBookingError(c, err, "Failed to book appointment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked",
		"appointment": appt,
	})
}

func (h *BookingHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	callerIDVal, callerRole, ok := bookingCaller(c)
	if !ok {
		return
	}

	appointmentID := c.Param("id")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	var req models.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), callerIDVal, callerRole, appointmentID, models.AppointmentStatus(req.Status))
	if err != nil {
		respondBookingError(c, err, "Failed to update appointment status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated",
		"appointment": appt,
	})
}

func (h *BookingHandler) ListUserAppointmentsHandler(c *gin.Context) {
	userID, ok := callerID(c, "userID")
	if !ok {
		return
	}

	appts, err := h.Service.ListUserAppointments(c.Request.Context(), userID)
	if err != nil {
		respondBookingError(c, err, "Failed to list appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *BookingHandler) ListProviderAppointmentsHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	appts, err := h.Service.ListProviderAppointments(c.Request.Context(), providerID, c.Query("date"))
	if err != nil {
		respondBookingError(c, err, "Failed to list appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// bookingCaller resolves whichever identity the auth middleware set.
func bookingCaller(c *gin.Context) (string, string, bool) {
	if val, exists := c.Get("providerID"); exists {
		if id, ok := val.(string); ok && id != "" {
			return id, "provider", true
		}
	}
	if val, exists := c.Get("userID"); exists {
		if id, ok := val.(string); ok && id != "" {
			return id, "user", true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
	return "", "", false
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/http/middleware"
	"github.com/selvawasi/backend/internal/services"
	"github.com/selvawasi/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	ScheduleID         int64   `json:"scheduleId"`
	ExperienceID       int64   `json:"experienceId"`
	TotalPrice         float64 `json:"totalPrice"`
	Status             string  `json:"status"`
	SeatNumber         string  `json:"seatNumber"`
	PassengerName      string  `json:"passengerName"`
	PassengerDocType   string  `json:"passengerDocType"`
	PassengerDocNumber string  `json:"passengerDocNumber"`
}

// POST /api/bookings (authenticated)
// Admission runs through the capacity guard; a full departure answers
// 409 with the user-facing message.
func CreateBooking(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	// The web flow confirms on creation, mirroring payment-on-booking.
	status := req.Status
	if status == "" {
		status = "CONFIRMED"
	}

	svc := services.BookingService{}
	booking, err := svc.Create(c.Request.Context(), models.BookingInput{
		UserID:             rc.UserID,
		ScheduleID:         req.ScheduleID,
		ExperienceID:       req.ExperienceID,
		Status:             status,
		TotalPrice:         req.TotalPrice,
		SeatNumber:         req.SeatNumber,
		PassengerName:      req.PassengerName,
		PassengerDocType:   req.PassengerDocType,
		PassengerDocNumber: req.PassengerDocNumber,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "bookings", "create",
		fmt.Sprintf("booking_id=%d seat=%s", booking.ID, booking.SeatNumber))
	c.JSON(http.StatusCreated, booking)
}

// GET /api/bookings (admin)
func GetBookings(c *gin.Context) {
	list, err := services.BookingService{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/me
func GetMyBookings(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	list, err := services.BookingService{}.ListByUser(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}

	detail, err := services.BookingService{}.GetDetail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.UserID != rc.UserID && !rc.IsAdmin() {
		respondError(c, http.StatusForbidden, "forbidden", "no autorizado para ver esta reserva", nil)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/bookings/code/:code (owner/admin)
// The code is what e-tickets print, so holders can look themselves up.
func GetBookingByCode(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	booking, err := services.BookingService{}.GetByCode(c.Param("code"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.UserID != rc.UserID && !rc.IsAdmin() {
		respondError(c, http.StatusForbidden, "forbidden", "no autorizado para ver esta reserva", nil)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/bookings/:id/status (admin)
func UpdateBookingStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req bookingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := services.BookingService{}.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id (admin)
func DeleteBooking(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (services.BookingService{}).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reserva eliminada"})
}

// GET /api/bookings/:id/ticket (owner/admin)
func GetBookingTicketPDF(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}

	svc := services.BookingService{}
	detail, err := svc.GetDetail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if detail.UserID != rc.UserID && !rc.IsAdmin() {
		respondError(c, http.StatusForbidden, "forbidden", "no autorizado para ver esta reserva", nil)
		return
	}

	docs := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := docs.GenerateTicket(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

package handlers

import (
	"net/http"

	"github.com/selvawasi/backend/internal/http/middleware"
	"github.com/selvawasi/backend/internal/services"
	"github.com/selvawasi/backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type reservationRequest struct {
	Pax           int    `json:"pax"`
	RequestedDate string `json:"requestedDate"`
	OperatorNote  string `json:"operatorNote"`
}

// POST /api/restaurants/:id/reservations (authenticated)
func CreateReservation(c *gin.Context) {
	restaurantID, ok := PathID(c)
	if !ok {
		return
	}
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	var req reservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	requested, err := utils.ParseRequestedDate(req.RequestedDate)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "fecha inválida", nil)
		return
	}

	svc := services.ReservationService{}
	rv, err := svc.Create(services.ReservationInput{
		UserID:        rc.UserID,
		RestaurantID:  restaurantID,
		Pax:           req.Pax,
		RequestedDate: requested,
		OperatorNote:  req.OperatorNote,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "reservations", "create", "reservation_id="+rv.Code)
	c.JSON(http.StatusCreated, rv)
}

// GET /api/reservations (admin sees all, owner sees own restaurant)
func GetReservations(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	list, err := services.ReservationService{}.ListFor(rc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type reservationDecision struct {
	Status string `json:"status"`
}

// PATCH /api/reservations/:id/status (owner/admin)
func DecideReservation(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}
	var req reservationDecision
	if !BindJSONOrError(c, &req) {
		return
	}
	rv, err := services.ReservationService{}.Decide(rc, id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

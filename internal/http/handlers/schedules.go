package handlers

import (
	"net/http"
	"time"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"
	"github.com/selvawasi/backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/schedules
// Embeds boat + route and the remaining seats per departure.
func GetSchedules(c *gin.Context) {
	list, err := repositories.ScheduleRepository{}.ListDetailed()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BookingService{}
	for i := range list {
		seats, err := svc.SeatsAvailable(c.Request.Context(), list[i].ID, list[i].Boat.Capacity)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		list[i].SeatsAvailable = seats
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/schedules/:id
func GetScheduleByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	detail, err := repositories.ScheduleRepository{}.GetDetail(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	seats, err := services.BookingService{}.SeatsAvailable(c.Request.Context(), detail.ID, detail.Boat.Capacity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	detail.SeatsAvailable = seats
	c.JSON(http.StatusOK, detail)
}

type scheduleRequest struct {
	BoatID        int64     `json:"boatId"`
	RouteID       int64     `json:"routeId"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Price         float64   `json:"price"`
}

// POST /api/schedules (operator/admin)
func CreateSchedule(c *gin.Context) {
	var req scheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BoatID <= 0 || req.RouteID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "boatId y routeId requeridos", nil)
		return
	}
	if req.DepartureTime.IsZero() || req.ArrivalTime.IsZero() {
		respondError(c, http.StatusBadRequest, "validation_error", "horarios de salida y llegada requeridos", nil)
		return
	}

	// the boat and route must exist
	if _, err := (repositories.BoatRepository{}).GetByID(req.BoatID); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := (repositories.RouteRepository{}).GetByID(req.RouteID); err != nil {
		RespondDomainError(c, err)
		return
	}

	sched, err := repositories.ScheduleRepository{}.Create(models.Schedule{
		BoatID:        req.BoatID,
		RouteID:       req.RouteID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sched)
}

// PUT /api/schedules/:id (operator/admin)
func UpdateSchedule(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req scheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sched, err := repositories.ScheduleRepository{}.Update(id, models.Schedule{
		BoatID:        req.BoatID,
		RouteID:       req.RouteID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Price:         req.Price,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// DELETE /api/schedules/:id (admin)
func DeleteSchedule(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.ScheduleRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "horario eliminado"})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/boats
func GetBoats(c *gin.Context) {
	boats, err := repositories.BoatRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, boats)
}

// GET /api/boats/:id
func GetBoatByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	boat, err := repositories.BoatRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, boat)
}

type boatRequest struct {
	OperatorID int64  `json:"operatorId"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Type       string `json:"type"`
	Features   string `json:"features"`
}

// POST /api/boats (operator/admin)
func CreateBoat(c *gin.Context) {
	var req boatRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "nombre requerido", nil)
		return
	}
	if req.Capacity < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "capacidad no puede ser negativa", nil)
		return
	}

	boat, err := repositories.BoatRepository{}.Create(models.Boat{
		OperatorID: req.OperatorID,
		Name:       strings.TrimSpace(req.Name),
		Capacity:   req.Capacity,
		Type:       strings.TrimSpace(req.Type),
		Features:   req.Features,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, boat)
}

// PUT /api/boats/:id (operator/admin)
func UpdateBoat(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req boatRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	boat, err := repositories.BoatRepository{}.Update(id, models.Boat{
		Name:     strings.TrimSpace(req.Name),
		Capacity: req.Capacity,
		Type:     strings.TrimSpace(req.Type),
		Features: req.Features,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, boat)
}

// DELETE /api/boats/:id (admin)
func DeleteBoat(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.BoatRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "embarcación eliminada"})
}

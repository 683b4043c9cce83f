package handlers

import (
	"net/http"
	"strings"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/routes
func GetRoutes(c *gin.Context) {
	routes, err := repositories.RouteRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GET /api/routes/:id
func GetRouteByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	route, err := repositories.RouteRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

type routeRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	Distance    int    `json:"distance"`
}

// POST /api/routes (admin)
func CreateRoute(c *gin.Context) {
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "origen y destino requeridos", nil)
		return
	}

	route, err := repositories.RouteRepository{}.Create(models.Route{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		DurationMin: req.Duration,
		DistanceKm:  req.Distance,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// PUT /api/routes/:id (admin)
func UpdateRoute(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req routeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	route, err := repositories.RouteRepository{}.Update(id, models.Route{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		DurationMin: req.Duration,
		DistanceKm:  req.Distance,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

// DELETE /api/routes/:id (admin)
func DeleteRoute(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.RouteRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ruta eliminada"})
}

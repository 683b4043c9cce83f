package handlers

import (
	"net/http"
	"strings"

	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/experiences
func GetExperiences(c *gin.Context) {
	list, err := repositories.ExperienceRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/experiences/:id
func GetExperienceByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	exp, err := repositories.ExperienceRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

type experienceRequest struct {
	OperatorID  int64   `json:"operatorId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Images      string  `json:"images"`
	Capacity    *int    `json:"capacity"`
}

func (r experienceRequest) model() models.Experience {
	e := models.Experience{
		OperatorID:  r.OperatorID,
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Price:       r.Price,
		Duration:    strings.TrimSpace(r.Duration),
		Location:    strings.TrimSpace(r.Location),
		Images:      r.Images,
	}
	if r.Capacity != nil {
		e.Capacity = *r.Capacity
		e.HasCapacity = true
	}
	return e
}

// POST /api/experiences (operator/admin)
func CreateExperience(c *gin.Context) {
	var req experienceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "título requerido", nil)
		return
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "capacidad no puede ser negativa", nil)
		return
	}

	exp, err := repositories.ExperienceRepository{}.Create(req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

// PUT /api/experiences/:id (operator/admin)
func UpdateExperience(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req experienceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	exp, err := repositories.ExperienceRepository{}.Update(id, req.model())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

// DELETE /api/experiences/:id (admin)
func DeleteExperience(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.ExperienceRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experiencia eliminada"})
}

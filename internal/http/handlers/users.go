package handlers

import (
	"net/http"
	"strings"

	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/domain/models"
	"github.com/selvawasi/backend/internal/http/middleware"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepository{}.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// PUT /api/users/profile
func UpdateProfile(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}

	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "nombre requerido", nil)
		return
	}

	user, err := repositories.UserRepository{}.UpdateFullName(rc.Email, name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// PUT /api/users/:id/role (admin)
func UpdateUserRole(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req updateRoleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	switch role {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleOperator, domain.RoleRestaurantOwner:
	default:
		respondError(c, http.StatusBadRequest, "validation_error", "rol desconocido: "+req.Role, nil)
		return
	}

	repo := repositories.UserRepository{}
	if err := repo.UpdateRole(id, role); err != nil {
		RespondDomainError(c, err)
		return
	}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// Operators get a company profile; boats and experiences hang off it.
	if role == domain.RoleOperator {
		ops := repositories.OperatorRepository{}
		if _, err := ops.GetByUser(id); domain.IsNotFound(err) {
			name := strings.TrimSpace(user.FullName)
			if name == "" {
				name = user.Email
			}
			if _, err := ops.Create(models.Operator{UserID: id, CompanyName: name}); err != nil {
				RespondDomainError(c, err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/selvawasi/backend/internal/domain"
	"github.com/selvawasi/backend/internal/http/middleware"
	"github.com/selvawasi/backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", "Credenciales inválidas", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "Credenciales inválidas", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "token_error", "no se pudo generar el token", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"user":         user,
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Name     string `json:"name"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "Datos incompletos", nil)
		return
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		fullName = strings.TrimSpace(req.Name)
	}

	repo := repositories.UserRepository{}
	taken, err := repo.EmailTaken(email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if taken {
		respondError(c, http.StatusBadRequest, "email_taken", "el correo ya está registrado", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "hash_error", "no se pudo procesar la contraseña", nil)
		return
	}

	user, err := repo.Create(email, string(hash), fullName, domain.RoleUser)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	rc, ok := middleware.GetAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "token requerido", nil)
		return
	}

	user, err := repositories.UserRepository{}.GetByID(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

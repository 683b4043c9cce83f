package handlers

import (
	"net/http"
	"strconv"

	intconfig "github.com/selvawasi/backend/internal/config"

	"github.com/gin-gonic/gin"
)

var jwtSecret = []byte("selva-secret-change-me")

// Configure wires env-dependent handler state. Called once by the router.
func Configure(env intconfig.Env) {
	if env.JWTSecret != "" {
		jwtSecret = []byte(env.JWTSecret)
	}
}

// JWTSecret exposes the signing key to the auth middleware.
func JWTSecret() []byte { return jwtSecret }

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "cuerpo vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_json", "payload inválido", err.Error())
		return false
	}
	return true
}

// PathID parses the :id route param; responds 400 and returns false on
// garbage.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id inválido", nil)
		return 0, false
	}
	return id, true
}

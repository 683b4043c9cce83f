package handlers

import (
	"net/http"
	"strings"

	"github.com/selvawasi/backend/internal/services"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Message string `json:"message"`
}

// POST /api/chat
func Chat(c *gin.Context) {
	var req chatRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "mensaje requerido", nil)
		return
	}
	c.JSON(http.StatusOK, services.ChatService{}.Reply(req.Message))
}

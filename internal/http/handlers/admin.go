package handlers

import (
	"net/http"

	"github.com/selvawasi/backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats (admin)
func AdminStats(c *gin.Context) {
	stats, err := services.AdminService{}.Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/admin/activity (admin)
func AdminActivity(c *gin.Context) {
	items, err := services.AdminService{}.Activity(5)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

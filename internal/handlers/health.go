package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth (GET /books/health)
func (h *Handler) GetHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

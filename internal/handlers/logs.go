package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kaplat/book-server/api/v1"
)

// GetLogLevel answers with the level name as plain text
// (GET /logs/level)
func (h *Handler) GetLogLevel(c *gin.Context, params v1.GetLogLevelParams) {
	level, err := h.levelSrv.Get(params.LoggerName)
	if err != nil {
		c.String(statusFor(err), err.Error())
		return
	}

	c.String(http.StatusOK, string(level))
}

// SetLogLevel (PUT /logs/level)
func (h *Handler) SetLogLevel(c *gin.Context, params v1.SetLogLevelParams) {
	level, err := h.levelSrv.Set(params.LoggerName, params.LoggerLevel)
	if err != nil {
		c.String(statusFor(err), err.Error())
		return
	}

	c.String(http.StatusOK, string(level))
}

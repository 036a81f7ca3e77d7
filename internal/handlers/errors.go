package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kaplat/book-server/api/v1"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		return http.StatusNotFound
	case srvErrors.IsValidationError(err):
		return http.StatusConflict
	case srvErrors.IsBadFilterError(err):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with an error envelope. Unexpected errors are logged
// and their message is not exposed.
func writeError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		zap.S().Named("book_handler").Errorw("failed to "+action, "error", err)
		msg = "failed to " + action
	}
	c.JSON(status, v1.NewErrorEnvelope(msg))
}

// ErrorHandler answers requests whose parameters could not be bound.
func ErrorHandler(c *gin.Context, err error, statusCode int) {
	c.JSON(statusCode, v1.NewErrorEnvelope(err.Error()))
}

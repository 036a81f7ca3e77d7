package middlewares

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestLogger numbers every request handled by one server and reports it
// on the request logger.
type RequestLogger struct {
	log   *zap.Logger
	count atomic.Int64
}

func NewRequestLogger(l *zap.Logger) *RequestLogger {
	return &RequestLogger{log: l}
}

// Count returns the number of requests seen so far.
func (r *RequestLogger) Count() int64 {
	return r.count.Load()
}

func (r *RequestLogger) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		n := r.count.Add(1)

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		resource := c.FullPath()
		if resource == "" {
			resource = c.Request.URL.Path
		}

		start := time.Now()
		r.log.Info(
			fmt.Sprintf("Incoming request | #%d | resource: %s | HTTP Verb %s", n, resource, c.Request.Method),
			zap.Int64("request_number", n),
			zap.String(RequestIDKey, requestID),
		)

		c.Next()

		r.log.Debug(
			fmt.Sprintf("request #%d duration: %dms", n, time.Since(start).Milliseconds()),
			zap.Int64("request_number", n),
			zap.String(RequestIDKey, requestID),
			zap.Int("status", c.Writer.Status()),
		)
	}
}

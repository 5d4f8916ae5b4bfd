package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/statementbox/internal/logger"
	"github.com/gin-gonic/gin"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, status and duration for each request.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	attrs := []any{
		"method", c.Request.Method,
		"route", route,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	}

	switch {
	case status >= http.StatusInternalServerError:
		l.logger.Error("HTTP request failed", append(attrs, "errors", c.Errors.String())...)
	case status >= http.StatusBadRequest:
		l.logger.Warn("HTTP request completed with client error", attrs...)
	default:
		l.logger.Info("HTTP request completed", attrs...)
	}
}

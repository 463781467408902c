package middleware

import (
	"net/http"
	"time"

	"tapconnect/pkg/apperror"
	"tapconnect/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderUserID carries the authenticated user id, set by the upstream
	// auth gateway after it validates the session. This service trusts it;
	// the gateway strips the header from external traffic.
	HeaderUserID = "X-User-ID"

	// Context keys
	CtxUserID = "user_id"
)

// Identity resolves the caller's user id from the gateway-injected header
// and stores it on the request context. Requests without a parseable id
// are rejected before any handler runs.
func Identity(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderUserID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing X-User-ID header"))
			c.Abort()
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			log.Warn().Str("raw", raw).Msg("unparseable user id header")
			response.Error(c, apperror.Validation("invalid X-User-ID header"))
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Next()
	}
}

// UserID retrieves the authenticated user id placed by Identity.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

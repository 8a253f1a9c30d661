package server

import (
	"errors"
	"time"

	"auction-draft/internal/auctionerrors"
	"auction-draft/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// ActivityToucher is the slice of the connection monitor the middleware needs.
type ActivityToucher interface {
	Touch(participantID string) error
}

// ActivityPingMiddleware refreshes the caller's session activity timestamp.
// Requests without the header, or from unknown participants, pass through
// untouched; liveness tracking must never reject traffic.
func ActivityPingMiddleware(monitor ActivityToucher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if participantID := c.GetHeader("X-Participant-ID"); participantID != "" {
			if err := monitor.Touch(participantID); err != nil && !errors.Is(err, auctionerrors.ErrSessionNotFound) {
				utils.Warn("activity ping not recorded", map[string]any{
					"participant_id": participantID,
					"error":          err.Error(),
				})
			}
		}
		c.Next()
	}
}

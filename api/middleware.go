package api

import (
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs method, path, status and elapsed time for every request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}
		log.Info("request handled", fields...)
	}
}

// ValidateBookingReference rejects a malformed :bookingReference path
// parameter before the handler runs.
func ValidateBookingReference(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref, ok := c.Params.Get("bookingReference")
		if !ok {
			c.Next()
			return
		}
		if !domain.ValidBookingReference(ref) {
			log.Warn("rejected invalid booking reference", "booking_reference", ref)
			badRequest(c, "Invalid booking reference",
				"Booking references must be exactly 6 alphanumeric characters (e.g. ABC123).")
			return
		}
		c.Next()
	}
}

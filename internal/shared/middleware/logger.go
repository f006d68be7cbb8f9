package middleware

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"library-lite/internal/shared/apperror"
)

// Logger writes one line per request. 5xx responses log at warn; Recovery
// has already logged the fault itself at error. Client errors, validation
// failures included, stay at info.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		if status >= http.StatusInternalServerError {
			event = log.Warn()
		} else {
			event = log.Info()
		}

		event = event.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		if query != "" {
			event = event.Str("query", query)
		}
		if fields := invalidFields(c); len(fields) > 0 {
			event = event.Strs("invalid_fields", fields)
		}

		event.Msg("HTTP Request")
	}
}

// invalidFields lists the fields of the first validation failure attached
// to c, sorted.
func invalidFields(c *gin.Context) []string {
	for _, ginErr := range c.Errors {
		var verr *apperror.ValidationError
		if !errors.As(ginErr.Err, &verr) {
			continue
		}
		fields := make([]string, 0, len(verr.Fields))
		for name := range verr.Fields {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		return fields
	}
	return nil
}

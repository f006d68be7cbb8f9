package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-lite/internal/shared/apperror"
	"library-lite/internal/shared/response"
)

// Recovery is the outer error stage. It turns panics and errors attached
// with c.Error into a 500, logging the full fault. Validation failures are
// left to the Validation stage: attached ones are skipped and recovered
// ones are re-panicked, so Recovery must be registered before Validation.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && apperror.IsValidation(err) {
				panic(rec)
			}

			err := panicError(rec)
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Err(err).
				Msg("Panic recovered")

			if !c.Writer.Written() {
				response.InternalServerError(c, err.Error())
			}
			c.Abort()
		}()

		c.Next()

		err := firstFault(c)
		if err == nil {
			return
		}

		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Err(err).
			Msg("Unhandled error")

		if !c.Writer.Written() {
			response.InternalServerError(c, err.Error())
		}
	}
}

// firstFault returns the first attached error that is not a validation failure.
func firstFault(c *gin.Context) error {
	for _, ginErr := range c.Errors {
		if !apperror.IsValidation(ginErr.Err) {
			return ginErr.Err
		}
	}
	return nil
}

func panicError(rec interface{}) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(rec))
}

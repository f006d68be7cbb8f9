package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"library-lite/internal/shared/apperror"
	"library-lite/internal/shared/response"
)

// Validation is the inner error stage. A *apperror.ValidationError attached
// with c.Error or raised with panic becomes 400 {errors}. Anything else passes
// through untouched to Recovery.
func Validation() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			var verr *apperror.ValidationError
			if !ok || !errors.As(err, &verr) {
				panic(rec)
			}
			writeValidation(c, verr)
		}()

		c.Next()

		for _, ginErr := range c.Errors {
			var verr *apperror.ValidationError
			if errors.As(ginErr.Err, &verr) {
				writeValidation(c, verr)
				return
			}
		}
	}
}

func writeValidation(c *gin.Context, verr *apperror.ValidationError) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	response.ValidationFailed(c, verr.Fields)
}

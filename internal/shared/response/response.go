package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-lite/internal/shared/apperror"
)

// InternalErrorMessage is the generic text returned with every 500.
const InternalErrorMessage = "An unexpected error occurred on the server."

// ValidationErrorBody is the 400 body.
type ValidationErrorBody struct {
	Errors apperror.FieldErrors `json:"errors"`
}

// InternalErrorBody is the 500 body. Details carries the raw fault text only.
type InternalErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Created answers 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound answers 404 with an empty body.
func NotFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// Fail hands err to the error middlewares and stops the handler chain.
// Handlers never write error bodies themselves.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Error responses
func ValidationFailed(c *gin.Context, fields apperror.FieldErrors) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorBody{Errors: fields})
}

func InternalServerError(c *gin.Context, details string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorBody{
		Error:   InternalErrorMessage,
		Details: details,
	})
}

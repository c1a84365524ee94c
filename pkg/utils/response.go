package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload returned by every failing endpoint.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

func ValidationErrorResponse(c *gin.Context, statusCode int, message string, errs []string) {
	c.JSON(statusCode, ErrorBody{Message: message, Errors: errs})
}

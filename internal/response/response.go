package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the uniform response envelope. Every endpoint, including the
// 404 and panic fallbacks, responds with this shape.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Code    int    `json:"code"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data, Code: http.StatusOK})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data, Code: http.StatusCreated})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Success: false, Message: message, Code: status})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "access denied"
	}
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	Error(c, http.StatusNotFound, message)
}

// InternalError hides the underlying cause from the client; callers
// log it server-side.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// NoRoute normalizes gin's default 404 into the envelope.
func NoRoute(c *gin.Context) {
	NotFound(c, "route not found")
}

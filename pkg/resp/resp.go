package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VaniNagpal/Restaurant-Backend/pkg/apperr"
)

// OK writes the success envelope: {message, data}.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "data": data})
}

// Error normalizes any failure into {status, message, success:false},
// with the HTTP status mirroring the body's status field.
func Error(c *gin.Context, err error) {
	status := apperr.StatusOf(err)
	c.JSON(status, gin.H{
		"status":  status,
		"message": apperr.MessageOf(err),
		"success": false,
	})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  http.StatusUnauthorized,
		"message": msg,
		"success": false,
	})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{
		"status":  http.StatusForbidden,
		"message": msg,
		"success": false,
	})
}

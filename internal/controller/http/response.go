package http

import (
	"errors"
	"net/http"

	"linkup/internal/repo/persistent"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, data} on success,
// {success, msg} on failure. No raw error ever crosses the HTTP boundary.

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "msg": msg})
}

// statusFor maps repository-level errors onto HTTP statuses; everything not
// recognized is a 500.
func statusFor(err error) int {
	if errors.Is(err, persistent.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

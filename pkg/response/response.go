package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/luct-ict/reporting-api/pkg/errors"
)

// JSON sends a success payload. Bodies are emitted as-is to stay compatible
// with the legacy wire format (plain arrays and objects, no envelope).
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response in the legacy {"error": "..."} shape.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// RouteNotFound reports an unmatched route including the requested path.
func RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Route not found",
		"path":  c.Request.URL.Path,
	})
}

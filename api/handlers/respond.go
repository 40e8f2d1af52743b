package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickblog/apperr"
	"quickblog/logger"
)

// respondError translates any error into its HTTP shape. Unknown errors
// become a generic 500; the cause goes to the server log, never the client.
func respondError(c *gin.Context, err error) {
	status := apperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Errorf("request failed: %v", err)
	}
	c.JSON(status, gin.H{"error": apperr.MessageOf(err)})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archeolens/archeolens-server/internal/apierrors"
	"github.com/archeolens/archeolens-server/internal/model"
)

// handleError writes an error response. Domain errors carry their own status
// and message; anything unexpected becomes a 500 with the route's fallback
// message so internals never leak to the client.
func handleError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fallback})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

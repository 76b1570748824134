package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/archeolens/archeolens-server/internal/logger"
)

// Archaeologist handles the researcher directory endpoint.
type Archaeologist struct {
	profileService ProfileService
	logger         *logger.Logger
}

// NewArchaeologist creates a new Archaeologist handler.
func NewArchaeologist(profileService ProfileService, logger *logger.Logger) *Archaeologist {
	return &Archaeologist{profileService: profileService, logger: logger}
}

// Search returns registered archaeologists, optionally widened by a name
// query. Emails are never included.
func (h *Archaeologist) Search(c *gin.Context) {
	archaeologists, err := h.profileService.SearchArchaeologists(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("Archaeologist handler: search failed", "error", err.Error())
		handleError(c, err, "Erro ao buscar arqueólogos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"archaeologists": archaeologists})
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

// SiteService defines archaeological site operations.
type SiteService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.SiteParams) (model.Site, error)
	Get(ctx context.Context, id string) (model.Site, error)
	List(ctx context.Context) ([]model.Site, error)
	Search(ctx context.Context, query, searchType string) ([]model.Site, error)
	Update(ctx context.Context, userID uuid.UUID, id string, params model.SiteParams) (model.Site, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

// Site handles HTTP endpoints for archaeological sites.
type Site struct {
	siteService    SiteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSite creates a new Site handler.
func NewSite(siteService SiteService, contextManager model.ContextManager, logger *logger.Logger) *Site {
	return &Site{siteService: siteService, contextManager: contextManager, logger: logger}
}

func (h *Site) callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return uuid.Nil, false
	}
	return userID, true
}

// Create registers a new site owned by the caller.
func (h *Site) Create(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var params model.SiteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios"})
		return
	}

	site, err := h.siteService.Create(c.Request.Context(), userID, params)
	if err != nil {
		h.logger.Error("Site handler: create failed", "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao criar sítio arqueológico")
		return
	}

	h.logger.Info("Site handler: site created", "site_id", site.ID, "user_id", userID)

	c.JSON(http.StatusOK, gin.H{"success": true, "site": site})
}

// List returns every site.
func (h *Site) List(c *gin.Context) {
	sites, err := h.siteService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Site handler: list failed", "error", err.Error())
		handleError(c, err, "Erro ao buscar sítios")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// Search filters sites by query and search type.
func (h *Site) Search(c *gin.Context) {
	sites, err := h.siteService.Search(c.Request.Context(), c.Query("q"), c.Query("type"))
	if err != nil {
		h.logger.Error("Site handler: search failed", "error", err.Error())
		handleError(c, err, "Erro ao buscar sítios")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// Get returns a single site by ID.
func (h *Site) Get(c *gin.Context) {
	site, err := h.siteService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Erro ao buscar sítio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

// Update modifies a site owned by the caller.
func (h *Site) Update(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var params model.SiteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	site, err := h.siteService.Update(c.Request.Context(), userID, c.Param("id"), params)
	if err != nil {
		h.logger.Error("Site handler: update failed", "site_id", c.Param("id"), "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao atualizar sítio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "site": site})
}

// Delete removes a site owned by the caller.
func (h *Site) Delete(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	if err := h.siteService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("Site handler: delete failed", "site_id", c.Param("id"), "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao excluir sítio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

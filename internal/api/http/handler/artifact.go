package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

// ArtifactService defines artifact operations.
type ArtifactService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.ArtifactParams) (model.Artifact, error)
	Get(ctx context.Context, id string) (model.Artifact, error)
	List(ctx context.Context) ([]model.Artifact, error)
	Search(ctx context.Context, query string) ([]model.Artifact, error)
	Update(ctx context.Context, userID uuid.UUID, id string, params model.ArtifactParams) (model.Artifact, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
}

// Artifact handles HTTP endpoints for artifacts.
type Artifact struct {
	artifactService ArtifactService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewArtifact creates a new Artifact handler.
func NewArtifact(artifactService ArtifactService, contextManager model.ContextManager, logger *logger.Logger) *Artifact {
	return &Artifact{artifactService: artifactService, contextManager: contextManager, logger: logger}
}

func (h *Artifact) callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return uuid.Nil, false
	}
	return userID, true
}

// Create registers a new artifact owned by the caller.
func (h *Artifact) Create(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var params model.ArtifactParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos obrigatórios devem ser preenchidos"})
		return
	}

	artifact, err := h.artifactService.Create(c.Request.Context(), userID, params)
	if err != nil {
		h.logger.Error("Artifact handler: create failed", "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao criar artefato")
		return
	}

	h.logger.Info("Artifact handler: artifact created", "artifact_id", artifact.ID, "user_id", userID)

	c.JSON(http.StatusOK, gin.H{"success": true, "artifact": artifact})
}

// List returns every artifact.
func (h *Artifact) List(c *gin.Context) {
	artifacts, err := h.artifactService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Artifact handler: list failed", "error", err.Error())
		handleError(c, err, "Erro ao buscar artefatos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

// Search filters artifacts by name or archaeologist.
func (h *Artifact) Search(c *gin.Context) {
	artifacts, err := h.artifactService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("Artifact handler: search failed", "error", err.Error())
		handleError(c, err, "Erro ao buscar artefatos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artifacts": artifacts})
}

// Get returns a single artifact by ID.
func (h *Artifact) Get(c *gin.Context) {
	artifact, err := h.artifactService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err, "Erro ao buscar artefato")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artifact": artifact})
}

// Update modifies an artifact owned by the caller.
func (h *Artifact) Update(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var params model.ArtifactParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	artifact, err := h.artifactService.Update(c.Request.Context(), userID, c.Param("id"), params)
	if err != nil {
		h.logger.Error("Artifact handler: update failed", "artifact_id", c.Param("id"), "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao atualizar artefato")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "artifact": artifact})
}

// Delete removes an artifact owned by the caller.
func (h *Artifact) Delete(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	if err := h.artifactService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.logger.Error("Artifact handler: delete failed", "artifact_id", c.Param("id"), "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao excluir artefato")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

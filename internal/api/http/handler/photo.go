package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
	"github.com/archeolens/archeolens-server/internal/service"
)

// PhotoService defines photo upload operations.
type PhotoService interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (service.UploadResult, error)
}

// Photo handles the artifact photo upload endpoint.
type Photo struct {
	photoService   PhotoService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPhoto creates a new Photo handler.
func NewPhoto(photoService PhotoService, contextManager model.ContextManager, logger *logger.Logger) *Photo {
	return &Photo{photoService: photoService, contextManager: contextManager, logger: logger}
}

// Upload accepts a multipart "file" field, stores it and returns a signed URL.
func (h *Photo) Upload(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum arquivo enviado"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Photo handler: failed to open upload", "error", err.Error())
		handleError(c, err, "Erro ao fazer upload da foto")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.photoService.Upload(c.Request.Context(), userID, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		h.logger.Error("Photo handler: upload failed", "user_id", userID, "error", err.Error())
		handleError(c, err, "Erro ao fazer upload da foto")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"photoUrl": result.PhotoURL,
		"fileName": result.FileName,
	})
}

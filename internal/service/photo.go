package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/apierrors"
	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

const (
	// MaxPhotoSize is the upload cap for artifact photos (5 MiB).
	MaxPhotoSize = 5 * 1024 * 1024
	// photoURLValidity is the requested signed URL lifetime. The storage
	// adapter clamps it to whatever the backend allows.
	photoURLValidity = 365 * 24 * time.Hour
)

type Photo struct {
	storage model.ObjectStorage
	logger  *logger.Logger
}

func NewPhoto(storage model.ObjectStorage, logger *logger.Logger) *Photo {
	return &Photo{
		storage: storage,
		logger:  logger,
	}
}

// UploadResult carries the stored object name and its signed URL.
type UploadResult struct {
	PhotoURL string
	FileName string
}

// Upload validates and stores an artifact photo under a random name, then
// returns a signed URL for it. The photo is not linked to any artifact here;
// association only happens if the caller saves the URL on a record.
func (p *Photo) Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, size int64, reader io.Reader) (UploadResult, error) {
	if size > MaxPhotoSize {
		return UploadResult{}, apierrors.NewValidation("Arquivo muito grande. Máximo 5MB")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return UploadResult{}, apierrors.NewValidation("Apenas imagens são permitidas")
	}

	storedName := uuid.NewString() + filepath.Ext(fileName)

	if err := p.storage.Upload(ctx, storedName, reader, size, contentType); err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	photoURL, err := p.storage.PresignedURL(ctx, storedName, photoURLValidity)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to presign photo: %w", err)
	}

	p.logger.Info("photo uploaded", "file_name", storedName, "user_id", userID, "size", size)

	return UploadResult{
		PhotoURL: photoURL,
		FileName: storedName,
	}, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/apierrors"
	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

type Artifact struct {
	kv     model.KVStore
	logger *logger.Logger
}

func NewArtifact(kv model.KVStore, logger *logger.Logger) *Artifact {
	return &Artifact{
		kv:     kv,
		logger: logger,
	}
}

func artifactKey(id string) string {
	return model.KeyPrefixArtifact + id
}

// Create validates the required fields and persists a new artifact owned by
// the caller. The referenced site id is not checked for existence.
func (a *Artifact) Create(ctx context.Context, userID uuid.UUID, params model.ArtifactParams) (model.Artifact, error) {
	if params.Name == "" || params.Archaeologist == "" || params.Location == "" || params.SiteID == "" {
		return model.Artifact{}, apierrors.NewValidation("Todos os campos obrigatórios devem ser preenchidos")
	}

	artifact := model.Artifact{
		ID:            uuid.NewString(),
		Name:          params.Name,
		Archaeologist: params.Archaeologist,
		Location:      params.Location,
		SiteID:        params.SiteID,
		Description:   params.Description,
		PhotoURL:      params.PhotoURL,
		CreatedBy:     userID.String(),
		CreatedAt:     time.Now(),
	}

	if err := a.kv.Set(ctx, artifactKey(artifact.ID), artifact); err != nil {
		return model.Artifact{}, fmt.Errorf("failed to save artifact: %w", err)
	}

	a.logger.Info("artifact created", "artifact_id", artifact.ID, "user_id", userID)

	return artifact, nil
}

// Get returns a single artifact by id.
func (a *Artifact) Get(ctx context.Context, id string) (model.Artifact, error) {
	raw, err := a.kv.Get(ctx, artifactKey(id))
	if errors.Is(err, model.ErrNotFound) {
		return model.Artifact{}, apierrors.NewNotFound("Artefato não encontrado")
	}
	if err != nil {
		return model.Artifact{}, fmt.Errorf("failed to get artifact: %w", err)
	}

	var artifact model.Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return model.Artifact{}, fmt.Errorf("failed to decode artifact: %w", err)
	}

	return artifact, nil
}

// List returns all artifacts in insertion order.
func (a *Artifact) List(ctx context.Context) ([]model.Artifact, error) {
	values, err := a.kv.GetByPrefix(ctx, model.KeyPrefixArtifact)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	artifacts := make([]model.Artifact, 0, len(values))
	for _, raw := range values {
		var artifact model.Artifact
		if err := json.Unmarshal(raw, &artifact); err != nil {
			return nil, fmt.Errorf("failed to decode artifact: %w", err)
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// Search filters artifacts whose name or discovering archaeologist contains
// the query, case-insensitively.
func (a *Artifact) Search(ctx context.Context, query string) ([]model.Artifact, error) {
	artifacts, err := a.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)

	matched := make([]model.Artifact, 0)
	for _, artifact := range artifacts {
		if strings.Contains(strings.ToLower(artifact.Name), query) ||
			strings.Contains(strings.ToLower(artifact.Archaeologist), query) {
			matched = append(matched, artifact)
		}
	}

	return matched, nil
}

// Update merges the non-empty fields of params into an existing artifact.
// Only the creator may update; omitted fields keep their value.
func (a *Artifact) Update(ctx context.Context, userID uuid.UUID, id string, params model.ArtifactParams) (model.Artifact, error) {
	artifact, err := a.Get(ctx, id)
	if err != nil {
		return model.Artifact{}, err
	}

	if artifact.CreatedBy != userID.String() {
		return model.Artifact{}, apierrors.NewForbidden("Você não tem permissão para editar este artefato")
	}

	if params.Name != "" {
		artifact.Name = params.Name
	}
	if params.Archaeologist != "" {
		artifact.Archaeologist = params.Archaeologist
	}
	if params.Location != "" {
		artifact.Location = params.Location
	}
	if params.SiteID != "" {
		artifact.SiteID = params.SiteID
	}
	if params.Description != "" {
		artifact.Description = params.Description
	}
	if params.PhotoURL != "" {
		artifact.PhotoURL = params.PhotoURL
	}
	now := time.Now()
	artifact.UpdatedAt = &now

	if err := a.kv.Set(ctx, artifactKey(id), artifact); err != nil {
		return model.Artifact{}, fmt.Errorf("failed to save artifact: %w", err)
	}

	a.logger.Info("artifact updated", "artifact_id", id, "user_id", userID)

	return artifact, nil
}

// Delete removes an artifact. Only the creator may delete; deleting an
// absent id reports not found.
func (a *Artifact) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	artifact, err := a.Get(ctx, id)
	if err != nil {
		return err
	}

	if artifact.CreatedBy != userID.String() {
		return apierrors.NewForbidden("Você não tem permissão para excluir este artefato")
	}

	if err := a.kv.Delete(ctx, artifactKey(id)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewNotFound("Artefato não encontrado")
		}
		return fmt.Errorf("failed to delete artifact: %w", err)
	}

	a.logger.Info("artifact deleted", "artifact_id", id, "user_id", userID)

	return nil
}

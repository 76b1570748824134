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

type Site struct {
	kv     model.KVStore
	logger *logger.Logger
}

func NewSite(kv model.KVStore, logger *logger.Logger) *Site {
	return &Site{
		kv:     kv,
		logger: logger,
	}
}

func siteKey(id string) string {
	return model.KeyPrefixSite + id
}

// Create validates the required fields and persists a new site owned by the
// caller.
func (s *Site) Create(ctx context.Context, userID uuid.UUID, params model.SiteParams) (model.Site, error) {
	if params.Name == "" || params.Description == "" || params.Location == "" ||
		params.Highlight == "" || params.State == "" || params.City == "" {
		return model.Site{}, apierrors.NewValidation("Todos os campos são obrigatórios")
	}

	site := model.Site{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		Location:    params.Location,
		Highlight:   params.Highlight,
		State:       params.State,
		City:        params.City,
		CreatedBy:   userID.String(),
		CreatedAt:   time.Now(),
	}

	if err := s.kv.Set(ctx, siteKey(site.ID), site); err != nil {
		return model.Site{}, fmt.Errorf("failed to save site: %w", err)
	}

	s.logger.Info("site created", "site_id", site.ID, "user_id", userID)

	return site, nil
}

// Get returns a single site by id.
func (s *Site) Get(ctx context.Context, id string) (model.Site, error) {
	raw, err := s.kv.Get(ctx, siteKey(id))
	if errors.Is(err, model.ErrNotFound) {
		return model.Site{}, apierrors.NewNotFound("Sítio não encontrado")
	}
	if err != nil {
		return model.Site{}, fmt.Errorf("failed to get site: %w", err)
	}

	var site model.Site
	if err := json.Unmarshal(raw, &site); err != nil {
		return model.Site{}, fmt.Errorf("failed to decode site: %w", err)
	}

	return site, nil
}

// List returns all sites in insertion order.
func (s *Site) List(ctx context.Context) ([]model.Site, error) {
	values, err := s.kv.GetByPrefix(ctx, model.KeyPrefixSite)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	sites := make([]model.Site, 0, len(values))
	for _, raw := range values {
		var site model.Site
		if err := json.Unmarshal(raw, &site); err != nil {
			return nil, fmt.Errorf("failed to decode site: %w", err)
		}
		sites = append(sites, site)
	}

	return sites, nil
}

// Search filters sites by a case-insensitive substring match against the
// field chosen by searchType (name, state or city; name is the default).
func (s *Site) Search(ctx context.Context, query, searchType string) ([]model.Site, error) {
	sites, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	if searchType == "" {
		searchType = model.SiteSearchByName
	}

	matched := make([]model.Site, 0)
	for _, site := range sites {
		var field string
		switch searchType {
		case model.SiteSearchByName:
			field = site.Name
		case model.SiteSearchByState:
			field = site.State
		case model.SiteSearchByCity:
			field = site.City
		default:
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			matched = append(matched, site)
		}
	}

	return matched, nil
}

// Update merges the non-empty fields of params into an existing site. Only
// the creator may update; omitted fields keep their value.
func (s *Site) Update(ctx context.Context, userID uuid.UUID, id string, params model.SiteParams) (model.Site, error) {
	site, err := s.Get(ctx, id)
	if err != nil {
		return model.Site{}, err
	}

	if site.CreatedBy != userID.String() {
		return model.Site{}, apierrors.NewForbidden("Você não tem permissão para editar este sítio")
	}

	if params.Name != "" {
		site.Name = params.Name
	}
	if params.Description != "" {
		site.Description = params.Description
	}
	if params.Location != "" {
		site.Location = params.Location
	}
	if params.Highlight != "" {
		site.Highlight = params.Highlight
	}
	if params.State != "" {
		site.State = params.State
	}
	if params.City != "" {
		site.City = params.City
	}
	now := time.Now()
	site.UpdatedAt = &now

	if err := s.kv.Set(ctx, siteKey(id), site); err != nil {
		return model.Site{}, fmt.Errorf("failed to save site: %w", err)
	}

	s.logger.Info("site updated", "site_id", id, "user_id", userID)

	return site, nil
}

// Delete removes a site. Only the creator may delete; deleting an absent id
// reports not found.
func (s *Site) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	site, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if site.CreatedBy != userID.String() {
		return apierrors.NewForbidden("Você não tem permissão para excluir este sítio")
	}

	if err := s.kv.Delete(ctx, siteKey(id)); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewNotFound("Sítio não encontrado")
		}
		return fmt.Errorf("failed to delete site: %w", err)
	}

	s.logger.Info("site deleted", "site_id", id, "user_id", userID)

	return nil
}

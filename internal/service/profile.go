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

type Profile struct {
	kv       model.KVStore
	identity model.IdentityProvider
	logger   *logger.Logger
}

func NewProfile(kv model.KVStore, identity model.IdentityProvider, logger *logger.Logger) *Profile {
	return &Profile{
		kv:       kv,
		identity: identity,
		logger:   logger,
	}
}

func profileKey(id string) string {
	return model.KeyPrefixUser + id
}

// Signup registers an account with the identity provider and mirrors the
// public profile into the record store for display and search.
func (p *Profile) Signup(ctx context.Context, params model.SignupParams) (model.Profile, error) {
	if params.Email == "" || params.Password == "" || params.Name == "" ||
		params.Profession == "" || params.Age <= 0 {
		return model.Profile{}, apierrors.NewValidation("Todos os campos são obrigatórios")
	}

	account, err := p.identity.Register(ctx, params.Email, params.Password)
	if errors.Is(err, model.ErrEmailTaken) {
		return model.Profile{}, apierrors.NewValidation("E-mail já cadastrado")
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to register account: %w", err)
	}

	profile := model.Profile{
		ID:         account.ID.String(),
		Email:      params.Email,
		Name:       params.Name,
		Profession: params.Profession,
		Age:        params.Age,
		Specialty:  params.Specialty,
		CreatedAt:  time.Now(),
	}

	if err := p.kv.Set(ctx, profileKey(profile.ID), profile); err != nil {
		return model.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	p.logger.Info("profile created", "user_id", profile.ID)

	return profile, nil
}

// Get returns the mirrored profile of a user.
func (p *Profile) Get(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	raw, err := p.kv.Get(ctx, profileKey(userID.String()))
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{}, apierrors.NewNotFound("Perfil não encontrado")
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile model.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return model.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}

	return profile, nil
}

// SearchArchaeologists returns the safe subset of profiles whose profession
// reads as archaeologist or whose name contains the query, case-insensitively.
func (p *Profile) SearchArchaeologists(ctx context.Context, query string) ([]model.Archaeologist, error) {
	values, err := p.kv.GetByPrefix(ctx, model.KeyPrefixUser)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	query = strings.ToLower(query)

	matched := make([]model.Archaeologist, 0)
	for _, raw := range values {
		var profile model.Profile
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}

		// An empty query matches every name, so all profiles are listed.
		profession := strings.ToLower(profile.Profession)
		if strings.Contains(profession, "arqueólogo") ||
			strings.Contains(profession, "arqueologo") ||
			strings.Contains(strings.ToLower(profile.Name), query) {
			matched = append(matched, model.Archaeologist{
				ID:         profile.ID,
				Name:       profile.Name,
				Profession: profile.Profession,
				Age:        profile.Age,
				Specialty:  profile.Specialty,
			})
		}
	}

	return matched, nil
}

// Package identity implements the identity provider capability on top of an
// account store, bcrypt password hashes and bearer session tokens. It is the
// only package that ever sees passwords.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

var _ model.IdentityProvider = (*Provider)(nil)

type Provider struct {
	accountStore model.AccountStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewProvider(accountStore model.AccountStore, tokenManager model.TokenManager, logger *logger.Logger) *Provider {
	return &Provider{
		accountStore: accountStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates an account for the given credentials.
func (p *Provider) Register(ctx context.Context, email, password string) (model.Account, error) {
	existing, err := p.accountStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		p.logger.Info("identity: email already registered", "email", email)
		return model.Account{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := model.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := p.accountStore.Create(ctx, account)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	p.logger.Info("identity: account registered", "account_id", saved.ID)

	return saved, nil
}

// Authenticate verifies the credentials and issues a session token.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (string, model.Account, error) {
	account, err := p.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.Account{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return "", model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return "", model.Account{}, model.ErrInvalidCredentials
	}

	token, err := p.tokenManager.GenerateSessionToken(account.ID)
	if err != nil {
		return "", model.Account{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	return token, account, nil
}

// ResolveCaller maps a bearer token to the account it identifies.
func (p *Provider) ResolveCaller(ctx context.Context, tokenString string) (uuid.UUID, error) {
	userID, err := p.tokenManager.ParseSessionToken(tokenString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	if _, err := p.accountStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.ErrInvalidCredentials
		}
		return uuid.Nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return userID, nil
}

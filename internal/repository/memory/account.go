package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/model"
)

var _ model.AccountStore = (*AccountStore)(nil)

// AccountStore is a thread-safe in-memory account store.
type AccountStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]model.Account
	byEmail map[string]uuid.UUID
}

func NewAccountStore() *AccountStore {
	return &AccountStore{
		byID:    make(map[uuid.UUID]model.Account),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *AccountStore) GetByEmail(_ context.Context, email string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}

	return s.byID[id], nil
}

func (s *AccountStore) GetByID(_ context.Context, id uuid.UUID) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.byID[id]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}

	return account, nil
}

func (s *AccountStore) Create(_ context.Context, account model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[account.Email]; ok {
		return model.Account{}, model.ErrEmailTaken
	}
	s.byID[account.ID] = account
	s.byEmail[account.Email] = account.ID

	return account, nil
}

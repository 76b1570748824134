package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for identity accounts.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
}

// Account is an identity account with its credential material. It is owned by
// the identity provider; resource records only ever reference its ID.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IdentityProvider is the narrow capability interface for authentication.
// Any compliant identity backend can satisfy it.
type IdentityProvider interface {
	Register(ctx context.Context, email, password string) (Account, error)
	Authenticate(ctx context.Context, email, password string) (string, Account, error)
	ResolveCaller(ctx context.Context, token string) (uuid.UUID, error)
}

// Profile is the public researcher profile mirrored into the record store at
// signup. It is written once and never mutated or deleted.
type Profile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Age        int       `json:"age"`
	Specialty  string    `json:"specialty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Archaeologist is the safe subset of a profile exposed by the archaeologist
// search, with the email stripped.
type Archaeologist struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
	Specialty  string `json:"specialty"`
}

// SignupParams contains the fields required to create an account and its
// mirrored profile.
type SignupParams struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
	Specialty  string `json:"specialty"`
}

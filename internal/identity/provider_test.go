package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeolens/archeolens-server/internal/model"
	"github.com/archeolens/archeolens-server/internal/repository/memory"
	"github.com/archeolens/archeolens-server/internal/testutil"
	"github.com/archeolens/archeolens-server/internal/token"
)

func newTestProvider() *Provider {
	return NewProvider(memory.NewAccountStore(), token.NewJWT("test-secret"), testutil.MakeNoopLogger())
}

func TestProvider_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	account, err := p.Register(ctx, "maria@example.com", "senha-forte")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.NotEqual(t, "senha-forte", string(account.PasswordHash))

	tokenString, authed, err := p.Authenticate(ctx, "maria@example.com", "senha-forte")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Equal(t, account.ID, authed.ID)

	callerID, err := p.ResolveCaller(ctx, tokenString)
	require.NoError(t, err)
	assert.Equal(t, account.ID, callerID)
}

func TestProvider_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Register(ctx, "maria@example.com", "senha")
	require.NoError(t, err)

	_, err = p.Register(ctx, "maria@example.com", "outra-senha")
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestProvider_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.Register(ctx, "maria@example.com", "senha")
	require.NoError(t, err)

	_, _, err = p.Authenticate(ctx, "maria@example.com", "errada")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestProvider_Authenticate_UnknownEmail(t *testing.T) {
	_, _, err := newTestProvider().Authenticate(context.Background(), "ghost@example.com", "senha")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestProvider_ResolveCaller_InvalidToken(t *testing.T) {
	_, err := newTestProvider().ResolveCaller(context.Background(), "garbage")
	assert.Error(t, err)
}

func TestProvider_ResolveCaller_DeletedAccount(t *testing.T) {
	ctx := context.Background()
	// Token signed for an account the store never saw.
	tm := token.NewJWT("test-secret")
	p := NewProvider(memory.NewAccountStore(), tm, testutil.MakeNoopLogger())

	tokenString, err := tm.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = p.ResolveCaller(ctx, tokenString)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

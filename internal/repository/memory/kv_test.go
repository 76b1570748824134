package memory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeolens/archeolens-server/internal/model"
)

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore()

	require.NoError(t, kv.Set(ctx, "site:1", map[string]string{"name": "Serra"}))

	raw, err := kv.Get(ctx, "site:1")
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Serra", got["name"])

	require.NoError(t, kv.Delete(ctx, "site:1"))

	_, err = kv.Get(ctx, "site:1")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, kv.Delete(ctx, "site:1"), model.ErrNotFound)
}

func TestKVStore_GetByPrefix_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	kv := NewKVStore()

	require.NoError(t, kv.Set(ctx, "site:b", map[string]string{"name": "first"}))
	require.NoError(t, kv.Set(ctx, "site:a", map[string]string{"name": "second"}))
	require.NoError(t, kv.Set(ctx, "artifact:x", map[string]string{"name": "other"}))

	// Overwriting must not move the key to the back.
	require.NoError(t, kv.Set(ctx, "site:b", map[string]string{"name": "first-updated"}))

	values, err := kv.GetByPrefix(ctx, "site:")
	require.NoError(t, err)
	require.Len(t, values, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal(values[0], &first))
	assert.Equal(t, "first-updated", first["name"])
}

func TestAccountStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	account := model.Account{ID: uuid.New(), Email: "ana@example.com"}
	_, err := store.Create(ctx, account)
	require.NoError(t, err)

	byEmail, err := store.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)

	byID, err := store.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	_, err = store.Create(ctx, model.Account{ID: uuid.New(), Email: "ana@example.com"})
	assert.ErrorIs(t, err, model.ErrEmailTaken)

	_, err = store.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

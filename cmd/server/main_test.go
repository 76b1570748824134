package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeolens/archeolens-server/internal/repository/memory"
	"github.com/archeolens/archeolens-server/internal/testutil"
)

func TestNewStores_EmptyDSNUsesMemory(t *testing.T) {
	kv, accounts, closeStores, err := newStores(context.Background(), "", testutil.MakeNoopLogger())
	require.NoError(t, err)
	defer closeStores()

	_, ok := kv.(*memory.KVStore)
	assert.True(t, ok, "expected in-memory record store, got %T", kv)
	_, ok = accounts.(*memory.AccountStore)
	assert.True(t, ok, "expected in-memory account store, got %T", accounts)
}

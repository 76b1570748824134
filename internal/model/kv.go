package model

import (
	"context"
	"encoding/json"
)

// Key prefixes for persisted record types.
const (
	KeyPrefixUser     = "user:"
	KeyPrefixSite     = "site:"
	KeyPrefixArtifact = "artifact:"
)

// KVStore defines the key-value persistence operations used for all records.
// Any store with prefix scan satisfies it; values are opaque JSON documents.
type KVStore interface {
	// Get returns the value at key, or ErrNotFound.
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set JSON-encodes value and upserts it at key.
	Set(ctx context.Context, key string, value any) error
	// Delete removes the value at key, returning ErrNotFound on a miss.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns all values whose key starts with prefix,
	// in insertion order.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

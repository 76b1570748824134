package context

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

// userIDKey is the context key under which the authenticated caller's ID is
// stored for the duration of a request.
const userIDKey ctxKey = 0

// Manager stores and retrieves the authenticated caller's ID on a request
// context. It is the only place that knows the context key.
type Manager struct{}

// NewManager creates a new request context manager.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID set by the authentication
// middleware. The boolean is false when the request was not authenticated.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

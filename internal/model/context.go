package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager threads the authenticated caller's ID through a request
// context, keeping handlers free of transport-level session state.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}

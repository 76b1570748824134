package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/archeolens/archeolens-server/internal/apierrors"
	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

// Authenticate validates bearer tokens and injects the caller's user ID into
// the request context.
type Authenticate struct {
	identity       model.IdentityProvider
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identity model.IdentityProvider, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identity: identity, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, resolves the caller and stores the
// user ID on the request context. Requests without a valid token are rejected
// with 401 before any handler runs.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if tokenString == "" || tokenString == c.GetHeader("Authorization") {
			m.abortUnauthorized(c)
			return
		}

		userID, err := m.identity.ResolveCaller(c.Request.Context(), tokenString)
		if err != nil {
			m.logger.Debug("authentication failed", "error", err.Error())
			m.abortUnauthorized(c)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (m *Authenticate) abortUnauthorized(c *gin.Context) {
	apiErr := apierrors.NewUnauthenticated()
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apiErr.Message})
}

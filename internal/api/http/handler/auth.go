package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/archeolens/archeolens-server/internal/logger"
	"github.com/archeolens/archeolens-server/internal/model"
)

// ProfileService defines signup and profile lookup operations.
type ProfileService interface {
	Signup(ctx context.Context, params model.SignupParams) (model.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	SearchArchaeologists(ctx context.Context, query string) ([]model.Archaeologist, error)
}

// Auth handles HTTP endpoints for account creation and sessions.
type Auth struct {
	profileService ProfileService
	identity       model.IdentityProvider
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(profileService ProfileService, identity model.IdentityProvider, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		profileService: profileService,
		identity:       identity,
		contextManager: contextManager,
		logger:         logger,
	}
}

// userPayload is the profile subset returned by auth endpoints.
type userPayload struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Age        int    `json:"age"`
	Specialty  string `json:"specialty"`
}

func toUserPayload(profile model.Profile) userPayload {
	return userPayload{
		ID:         profile.ID,
		Email:      profile.Email,
		Name:       profile.Name,
		Profession: profile.Profession,
		Age:        profile.Age,
		Specialty:  profile.Specialty,
	}
}

// Signup registers an account and its researcher profile.
func (h *Auth) Signup(c *gin.Context) {
	var params model.SignupParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos os campos são obrigatórios"})
		return
	}

	profile, err := h.profileService.Signup(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Auth handler: signup failed", "email", params.Email, "error", err.Error())
		handleError(c, err, "Erro ao criar usuário")
		return
	}

	h.logger.Info("Auth handler: signup completed", "user_id", profile.ID)

	c.JSON(http.StatusOK, gin.H{"success": true, "user": toUserPayload(profile)})
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signin authenticates credentials and returns a session token.
func (h *Auth) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "E-mail e senha são obrigatórios"})
		return
	}

	token, account, err := h.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
			return
		}
		h.logger.Error("Auth handler: signin failed", "email", req.Email, "error", err.Error())
		handleError(c, err, "Erro ao autenticar usuário")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), account.ID)
	if err != nil {
		h.logger.Error("Auth handler: profile lookup failed", "user_id", account.ID, "error", err.Error())
		handleError(c, err, "Erro ao autenticar usuário")
		return
	}

	h.logger.Info("Auth handler: signin completed", "user_id", account.ID)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"accessToken": token,
		"user":        toUserPayload(profile),
	})
}

// Session returns the authenticated caller's profile.
func (h *Auth) Session(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Não autorizado"})
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err, "Erro ao buscar sessão")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserPayload(profile)})
}

// Health reports service liveness.
func (h *Auth) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

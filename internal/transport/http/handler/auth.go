package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"contactbook/internal/domain"
	"contactbook/internal/metrics"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	ResolveIdentity(ctx context.Context, rawToken string) (*domain.User, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Name     string `json:"name"     binding:"required,max=256"`
	Email    string `json:"email"    binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,max=72"`
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userSummary `json:"user"`
}

type meResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signed, user, err := h.authUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": errDuplicateUser})
			return
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, authResponse{
		Token: signed,
		User:  userSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// POST /auth/login
// Unknown email and wrong password return the identical 400 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	signed, user, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidCredentials})
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, authResponse{
		Token: signed,
		User:  userSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// GET /auth/me
// Runs behind the Auth middleware, but re-resolves from the raw header so
// the deleted-account case maps to 404 rather than a stale context value.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.ResolveIdentity(c.Request.Context(), c.GetHeader("x-auth-token"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": domain.ErrTokenInvalid.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		default:
			h.logger.ErrorContext(c.Request.Context(), "resolve identity", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, meResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

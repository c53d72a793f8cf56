package transport

import (
	"errors"
	"net/http"

	"bysam-catalog/internal/domain"
	"bysam-catalog/internal/middleware"
	"bysam-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse represents the current-user identity
type SessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	User        SessionResponse `json:"user"`
}

// AuthHandler handles HTTP requests for the session/auth gate
type AuthHandler struct {
	authService service.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/session", h.Session)
		})
	})
}

// Login handles admin authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.logger.Debug("Login rejected", zap.String("username", req.Username))
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.logger.Info("Admin logged in", zap.String("username", session.Username))
	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        toSessionResponse(session),
	})
}

// Logout clears the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session returns the current session, if any
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.authService.CurrentSession(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "no active session")
			return
		}

		h.logger.Error("Failed to load session", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load session")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, toSessionResponse(session))
}

func toSessionResponse(session *domain.Session) SessionResponse {
	return SessionResponse{
		ID:       session.ID,
		Username: session.Username,
		IsAdmin:  session.IsAdmin,
	}
}

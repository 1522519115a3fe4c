package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/inventory-rest/internal/auth"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  repo.UserRepository
	issuer *auth.Issuer
	log    *zap.Logger
}

func NewAuthHandler(users repo.UserRepository, issuer *auth.Issuer, log *zap.Logger) *AuthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthHandler{users: users, issuer: issuer, log: log}
}

// Login godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials LoginRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByUsername(credentials.Username)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := auth.CheckPassword(user, credentials.Password); err != nil {
		h.log.Info("rejected login", zap.String("username", credentials.Username))
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.issuer.GenerateToken(user)
	if err != nil {
		h.log.Error("could not generate token", zap.Error(err))
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

// Health reports liveness.
func Health(log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
			log.Warn("failed to write response", zap.Error(err))
		}
	}
}

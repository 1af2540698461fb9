package handler

import (
	"net/http"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, token, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{"user": user.Public()})
}

// Login handles POST /api/auth/login. Malformed payloads get the same
// response as bad credentials.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, serviceerrors.NewInvalidCredentials().Wrap(err))
		return
	}

	user, token, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// Logout handles POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

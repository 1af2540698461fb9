package handler

import "net/http"

// Profile handles GET /api/user
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user.Public())
}

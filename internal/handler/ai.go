package handler

import "net/http"

// Recommendations handles GET /api/ai/recommendations
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.svc.Recommendations(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AnalyzeCollection handles GET /api/ai/analysis
func (h *Handler) AnalyzeCollection(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	result, err := h.svc.AnalyzeCollection(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// DemoFacts handles GET /api/ai/test-public, the unauthenticated demo route
func (h *Handler) DemoFacts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.DemoFacts(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

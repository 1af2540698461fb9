package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pokevault/pokedex-service/internal/models"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

// ListCollection handles GET /api/collection
func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items, err := h.svc.ListCollection(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// AddToCollection handles POST /api/collection
func (h *Handler) AddToCollection(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var req models.AddPokemonRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	item, err := h.svc.AddToCollection(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// RemoveFromCollection handles DELETE /api/collection/{id}
func (h *Handler) RemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	itemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.respondError(w, serviceerrors.NewValidation("Invalid item id").Wrap(err))
		return
	}

	if err := h.svc.RemoveFromCollection(r.Context(), userID, itemID); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Pokemon removed"})
}

// CollectionStats handles GET /api/collection/stats
func (h *Handler) CollectionStats(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	stats, err := h.svc.CollectionStats(r.Context(), userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

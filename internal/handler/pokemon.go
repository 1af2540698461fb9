package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// BrowseCatalog handles GET /api/pokemon?limit=&offset=
func (h *Handler) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	list, err := h.svc.BrowseCatalog(r.Context(), limit, offset)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, list)
}

// CatalogPokemon handles GET /api/pokemon/{id}
func (h *Handler) CatalogPokemon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		h.respondError(w, serviceerrors.NewValidation("Invalid pokemon id"))
		return
	}

	pokemon, err := h.svc.CatalogPokemon(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, pokemon)
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return val
}

package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pokevault/pokedex-service/internal/middleware"
)

// Router builds the full REST surface. Registration, login, logout, the
// catalog proxy, and the AI demo route are public; everything else sits
// behind the session middleware.
func (h *Handler) Router(authMW *middleware.AuthMiddleware) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/api/pokemon", h.BrowseCatalog).Methods(http.MethodGet)
	r.HandleFunc("/api/pokemon/{id}", h.CatalogPokemon).Methods(http.MethodGet)
	r.HandleFunc("/api/ai/test-public", h.DemoFacts).Methods(http.MethodGet)

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(authMW.Handler)
	protected.HandleFunc("/user", h.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/collection", h.ListCollection).Methods(http.MethodGet)
	protected.HandleFunc("/collection", h.AddToCollection).Methods(http.MethodPost)
	protected.HandleFunc("/collection/stats", h.CollectionStats).Methods(http.MethodGet)
	protected.HandleFunc("/collection/{id}", h.RemoveFromCollection).Methods(http.MethodDelete)
	protected.HandleFunc("/ai/recommendations", h.Recommendations).Methods(http.MethodGet)
	protected.HandleFunc("/ai/analysis", h.AnalyzeCollection).Methods(http.MethodGet)

	return r
}

// Package handler exposes the REST surface over the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/config"
	"github.com/pokevault/pokedex-service/internal/middleware"
	"github.com/pokevault/pokedex-service/internal/service"
	"github.com/pokevault/pokedex-service/internal/serviceerrors"
)

type Handler struct {
	svc      *service.Service
	validate *validator.Validate
	log      *logrus.Logger

	cookieSecure bool
	cookieMaxAge time.Duration
}

func NewHandler(svc *service.Service, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{
		svc:          svc,
		validate:     validator.New(),
		log:          log,
		cookieSecure: cfg.IsProduction(),
		cookieMaxAge: cfg.TokenTTL,
	}
}

// respondJSON writes v as the JSON response body
func (h *Handler) respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

// respondError converts any error to the {"error": message} body. Internal
// errors are logged with their cause; the client only sees the generic message.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	appErr := serviceerrors.FromError(err)
	if appErr.IsInternal() {
		h.log.Errorf("Internal error: %v", appErr.Base)
	}
	h.respondJSON(w, appErr.Code, map[string]string{"error": appErr.Msg})
}

// decodeAndValidate parses the JSON body into dst and checks its
// validation tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serviceerrors.NewValidation("Invalid request body").Wrap(err)
	}
	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return serviceerrors.NewValidation("Invalid value for field " + fieldErrs[0].Field()).Wrap(err)
		}
		return serviceerrors.NewValidation("Invalid request body").Wrap(err)
	}
	return nil
}

// setTokenCookie installs the session token as an HTTP-only cookie
func (h *Handler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearTokenCookie tells the client to discard its token. Tokens are
// self-verifying and unrevocable, so this is all a logout can do.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// userID pulls the authenticated user id injected by the session middleware
func (h *Handler) userID(r *http.Request) (int64, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, serviceerrors.NewUnauthorized()
	}
	return userID, nil
}

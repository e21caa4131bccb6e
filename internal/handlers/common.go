package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/i18n"
	"github.com/diewo77/quittance-app/internal/middleware"
	"github.com/diewo77/quittance-app/internal/quittance"
	"github.com/diewo77/quittance-app/internal/services"
)

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// jsonError writes the {error, details} envelope with the message
// translated for the request's language preference.
func jsonError(w http.ResponseWriter, r *http.Request, status int, code string) {
	lang := middleware.LangFrom(r)
	httpx.JSONError(w, status, code, map[string]string{"message": i18n.T(lang, code)})
}

// writeServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, quittance.ErrSelectionInvalide):
		jsonError(w, r, http.StatusBadRequest, "selection_invalide")
	case errors.Is(err, quittance.ErrPeriodeInvalide):
		jsonError(w, r, http.StatusBadRequest, "periode_invalide")
	case errors.Is(err, quittance.ErrNumeroConflit):
		jsonError(w, r, http.StatusConflict, "numero_conflit")
	case errors.Is(err, services.ErrDernierBailleur):
		jsonError(w, r, http.StatusConflict, "dernier_bailleur")
	case errors.Is(err, services.ErrBailleurUtilise):
		jsonError(w, r, http.StatusConflict, "bailleur_utilise")
	case errors.Is(err, services.ErrLocataireUtilise):
		jsonError(w, r, http.StatusConflict, "locataire_utilise")
	case errors.Is(err, gorm.ErrRecordNotFound):
		jsonError(w, r, http.StatusNotFound, "not_found")
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
}

func requireID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return "", false
	}
	return id, true
}

package handlers

import (
	"net/http"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/services"
)

type AppartementHandler struct {
	Svc *services.AppartementService
}

func NewAppartementHandler(svc *services.AppartementService) *AppartementHandler {
	return &AppartementHandler{Svc: svc}
}

func (h *AppartementHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	items, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *AppartementHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.AppartementInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	a, v, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}

func (h *AppartementHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.AppartementInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	a, v, err := h.Svc.Update(r.Context(), uid, id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

func (h *AppartementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	if err := h.Svc.Delete(r.Context(), uid, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Occupations handles /appartements/locataires: GET lists the occupancy
// rows of a unit (?appartement_id=), POST attaches a locataire.
func (h *AppartementHandler) Occupations(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	switch r.Method {
	case http.MethodGet:
		appID := r.URL.Query().Get("appartement_id")
		if appID == "" {
			httpx.JSONError(w, http.StatusBadRequest, "missing_appartement_id", nil)
			return
		}
		items, err := h.Svc.Occupations(r.Context(), uid, appID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	case http.MethodPost:
		var in services.OccupationInput
		if err := decodeJSON(r, &in); err != nil {
			jsonError(w, r, http.StatusBadRequest, "invalid_json")
			return
		}
		occ, err := h.Svc.Lier(r.Context(), uid, in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusCreated, occ)
	default:
		methodNotAllowed(w, "GET,POST")
	}
}

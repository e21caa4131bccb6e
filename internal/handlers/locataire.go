package handlers

import (
	"net/http"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/services"
)

type LocataireHandler struct {
	Svc *services.LocataireService
}

func NewLocataireHandler(svc *services.LocataireService) *LocataireHandler {
	return &LocataireHandler{Svc: svc}
}

func (h *LocataireHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	items, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *LocataireHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.LocataireInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	l, v, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusCreated, l)
}

func (h *LocataireHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.LocataireInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	l, v, err := h.Svc.Update(r.Context(), uid, id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusOK, l)
}

func (h *LocataireHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

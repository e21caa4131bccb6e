package handlers

import (
	"net/http"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/services"
)

type BailleurHandler struct {
	Svc *services.BailleurService
}

func NewBailleurHandler(svc *services.BailleurService) *BailleurHandler {
	return &BailleurHandler{Svc: svc}
}

func (h *BailleurHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	items, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *BailleurHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.BailleurInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	b, v, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusCreated, b)
}

func (h *BailleurHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	var in services.BailleurInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	b, v, err := h.Svc.Update(r.Context(), uid, id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	httpx.JSON(w, http.StatusOK, b)
}

func (h *BailleurHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

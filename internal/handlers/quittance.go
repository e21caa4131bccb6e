package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/i18n"
	"github.com/diewo77/quittance-app/internal/middleware"
	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/notify"
	"github.com/diewo77/quittance-app/internal/pdf"
	"github.com/diewo77/quittance-app/internal/services"
)

type QuittanceHandler struct {
	DB  *gorm.DB
	Svc *services.QuittanceService

	Email     notify.Sender
	SMS       notify.Sender
	Simulated bool // true when no SMTP transport is configured

	// LieuEmissionDefaut fills lieu_emission when the request omits it.
	LieuEmissionDefaut string
}

func NewQuittanceHandler(db *gorm.DB, svc *services.QuittanceService, email, sms notify.Sender, simulated bool, lieuDefaut string) *QuittanceHandler {
	return &QuittanceHandler{DB: db, Svc: svc, Email: email, SMS: sms, Simulated: simulated, LieuEmissionDefaut: lieuDefaut}
}

type genererReq struct {
	AppartementID string `json:"appartement_id"`
	LocataireID   string `json:"locataire_id"`
	Mois          int    `json:"mois"`
	Annee         int    `json:"annee"`
	DatePaiement  string `json:"date_paiement"`
	LieuEmission  string `json:"lieu_emission"`
	ModePaiement  string `json:"mode_paiement"`
}

func (h *QuittanceHandler) toInput(req genererReq) (services.GenererInput, bool) {
	in := services.GenererInput{
		AppartementID: req.AppartementID,
		LocataireID:   req.LocataireID,
		Mois:          req.Mois,
		Annee:         req.Annee,
		LieuEmission:  strings.TrimSpace(req.LieuEmission),
		ModePaiement:  req.ModePaiement,
	}
	if in.LieuEmission == "" {
		in.LieuEmission = h.LieuEmissionDefaut
	}
	if in.ModePaiement == "" {
		in.ModePaiement = models.PaiementVirement
	}
	if req.DatePaiement == "" {
		in.DatePaiement = time.Now().UTC().Truncate(24 * time.Hour)
		return in, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, req.DatePaiement); err == nil {
			in.DatePaiement = t
			return in, true
		}
	}
	return in, false
}

// List: GET /quittances?appartement_id=&locataire_id=&annee=
func (h *QuittanceHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	f := services.ListFilter{
		AppartementID: r.URL.Query().Get("appartement_id"),
		LocataireID:   r.URL.Query().Get("locataire_id"),
	}
	if v := r.URL.Query().Get("annee"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Annee = n
		}
	}
	items, err := h.Svc.Lister(r.Context(), uid, f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// Generer: POST /quittances — creates or regenerates the period's quittance.
func (h *QuittanceHandler) Generer(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var req genererReq
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	in, ok := h.toInput(req)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"date_paiement": "invalid_date"})
		return
	}
	q, created, err := h.Svc.Generer(r.Context(), uid, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, q)
}

// Apercu: POST /quittances/apercu — same computation, nothing stored.
func (h *QuittanceHandler) Apercu(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	var req genererReq
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	in, ok := h.toInput(req)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"date_paiement": "invalid_date"})
		return
	}
	q, err := h.Svc.Apercu(r.Context(), uid, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

// Delete: POST /quittances/delete?id=
func (h *QuittanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	if err := h.Svc.Supprimer(r.Context(), uid, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *QuittanceHandler) loadDocument(ctx context.Context, uid, id string) (pdf.DocumentData, error) {
	q, err := h.Svc.Get(ctx, uid, id)
	if err != nil {
		return pdf.DocumentData{}, err
	}
	var d pdf.DocumentData
	d.Quittance = q
	if err := h.DB.WithContext(ctx).First(&d.Appartement, "id = ?", q.AppartementID).Error; err != nil {
		return pdf.DocumentData{}, err
	}
	if err := h.DB.WithContext(ctx).First(&d.Bailleur, "id = ?", d.Appartement.BailleurID).Error; err != nil {
		return pdf.DocumentData{}, err
	}
	if err := h.DB.WithContext(ctx).First(&d.Locataire, "id = ?", q.LocataireID).Error; err != nil {
		return pdf.DocumentData{}, err
	}
	return d, nil
}

// PDF: GET /quittances/pdf?id=
func (h *QuittanceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	d, err := h.loadDocument(r.Context(), uid, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	data, err := pdf.QuittancePDF(d)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+notify.AttachmentName(d.Quittance)+"\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type envoyerReq struct {
	ID    string `json:"id"`
	Canal string `json:"canal"` // "email" (défaut) ou "sms"
}

// Envoyer: POST /quittances/envoyer — emails the PDF to the locataire, or
// sends an SMS summary. Without SMTP configured the send is simulated.
func (h *QuittanceHandler) Envoyer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	uid, _ := auth.UserIDFromContext(r.Context())
	var req envoyerReq
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.ID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	if req.Canal == "" {
		req.Canal = "email"
	}
	d, err := h.loadDocument(r.Context(), uid, req.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var m notify.Message
	var sender notify.Sender
	switch req.Canal {
	case "email":
		if d.Locataire.Email == "" {
			jsonError(w, r, http.StatusBadRequest, "email_manquant")
			return
		}
		body, err := notify.EmailBody(d.Quittance, d.Bailleur, d.Locataire)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			return
		}
		attachment, err := pdf.QuittancePDF(d)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "pdf_generation_failed", nil)
			return
		}
		m = notify.Message{
			To:             d.Locataire.Email,
			Subject:        notify.Subject(d.Quittance),
			Body:           body,
			Attachment:     attachment,
			AttachmentName: notify.AttachmentName(d.Quittance),
		}
		sender = h.Email
	case "sms":
		if d.Locataire.Telephone == "" {
			jsonError(w, r, http.StatusBadRequest, "telephone_manquant")
			return
		}
		body, err := notify.SMSBody(d.Quittance, d.Bailleur, d.Locataire)
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			return
		}
		m = notify.Message{To: d.Locataire.Telephone, Body: body}
		sender = h.SMS
	default:
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"canal": "invalid"})
		return
	}

	if err := sender.Send(r.Context(), m); err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "send_failed", nil)
		return
	}
	code := "quittance_envoyee"
	if h.Simulated || req.Canal == "sms" {
		// Pas de passerelle SMS branchée: l'envoi SMS est toujours simulé.
		code = "envoi_simule"
	}
	lang := middleware.LangFrom(r)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"status":    "sent",
		"canal":     req.Canal,
		"simulated": h.Simulated || req.Canal == "sms",
		"message":   i18n.T(lang, code),
	})
}

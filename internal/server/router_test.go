package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/config"
	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/quittance"
)

func setupServer(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Bailleur{}, &models.Locataire{},
		&models.Appartement{}, &models.AppartementLocataire{}, &models.Quittance{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := config.Config{NumberingScope: quittance.ScopeAppartement, LieuEmissionDefaut: "Paris"}
	return New(db, cfg), db
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	h, _ := setupServer(t)
	if w := doJSON(t, h, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Fatalf("/health: %d", w.Code)
	}
	if w := doJSON(t, h, http.MethodGet, "/healthz", "", nil); w.Code != http.StatusOK {
		t.Fatalf("/healthz: %d", w.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	h, _ := setupServer(t)
	for _, path := range []string{"/bailleurs", "/locataires", "/appartements", "/quittances"} {
		w := doJSON(t, h, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, w.Code)
		}
	}
}

// Full flow: signup, create entities, generate, download the PDF.
func TestEndToEndQuittanceFlow(t *testing.T) {
	h, _ := setupServer(t)

	w := doJSON(t, h, http.MethodPost, "/signup", `{"email":"flow@test","password":"secret123"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("signup: %d body=%s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("no session cookie")
	}

	w = doJSON(t, h, http.MethodPost, "/bailleurs", `{"nom":"Marie Dupont","adresse":"8 rue des Lilas, Paris"}`, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create bailleur: %d body=%s", w.Code, w.Body.String())
	}
	var bail models.Bailleur
	if err := json.Unmarshal(w.Body.Bytes(), &bail); err != nil {
		t.Fatalf("decode bailleur: %v", err)
	}

	w = doJSON(t, h, http.MethodPost, "/locataires", `{"nom":"Jean Martin","adresse":"3 avenue des Gobelins, Paris"}`, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create locataire: %d body=%s", w.Code, w.Body.String())
	}
	var loc models.Locataire
	if err := json.Unmarshal(w.Body.Bytes(), &loc); err != nil {
		t.Fatalf("decode locataire: %v", err)
	}

	appBody := fmt.Sprintf(`{"bailleur_id":%q,"adresse":"3 avenue des Gobelins, Paris","loyer":"1110","charges":"190","locataire_ids":[%q]}`, bail.ID, loc.ID)
	w = doJSON(t, h, http.MethodPost, "/appartements", appBody, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("create appartement: %d body=%s", w.Code, w.Body.String())
	}
	var app models.Appartement
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatalf("decode appartement: %v", err)
	}

	genBody := fmt.Sprintf(`{"appartement_id":%q,"locataire_id":%q,"mois":1,"annee":2025,"date_paiement":"2025-02-05","mode_paiement":"virement"}`, app.ID, loc.ID)
	w = doJSON(t, h, http.MethodPost, "/quittances", genBody, cookies)
	if w.Code != http.StatusCreated {
		t.Fatalf("generer: %d body=%s", w.Code, w.Body.String())
	}
	var q models.Quittance
	if err := json.Unmarshal(w.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode quittance: %v", err)
	}
	if q.Total.StringFixed(2) != "1300.00" {
		t.Fatalf("expected total 1300.00, got %s", q.Total.StringFixed(2))
	}

	w = doJSON(t, h, http.MethodGet, "/quittances/pdf?id="+q.ID, "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf: %d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf, got %q", ct)
	}
}

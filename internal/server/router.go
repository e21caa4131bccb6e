package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/config"
	"github.com/diewo77/quittance-app/internal/handlers"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/middleware"
	"github.com/diewo77/quittance-app/internal/models"
	"github.com/diewo77/quittance-app/internal/notify"
	"github.com/diewo77/quittance-app/internal/policy"
	"github.com/diewo77/quittance-app/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// Configure a user verifier so RequireAuth can ensure the user still exists.
	auth.SetUserVerifier(func(_ context.Context, uid string) bool {
		var count int64
		if err := db.Model(&models.User{}).Where("id = ?", uid).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	// One ownership gate shared by all services.
	gate := policy.NewGate()
	ownership := policy.NewOwnershipPolicy()
	for _, rt := range []string{"bailleur", "locataire", "appartement", "quittance"} {
		gate.Register(rt, ownership)
	}

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Perform a lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := db.Exec("SELECT 1").Error; err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, werr := w.Write([]byte(`{"status":"degraded"}`)); werr != nil {
				_ = werr
			}
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth endpoints
	authHandler := handlers.NewAuthHandler(db)
	authHandler.Register(mux)

	protect := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(auth.RequireAuth(h))
	}
	listCreate := func(list, create http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				list(w, r)
			case http.MethodPost:
				create(w, r)
			default:
				w.Header().Set("Allow", "GET,POST")
				httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			}
		}
	}

	// Bailleur endpoints
	bh := handlers.NewBailleurHandler(services.NewBailleurService(db, gate))
	mux.Handle("/bailleurs", protect(listCreate(bh.List, bh.Create)))
	mux.Handle("/bailleurs/update", protect(bh.Update))
	mux.Handle("/bailleurs/delete", protect(bh.Delete))

	// Locataire endpoints
	lh := handlers.NewLocataireHandler(services.NewLocataireService(db, gate))
	mux.Handle("/locataires", protect(listCreate(lh.List, lh.Create)))
	mux.Handle("/locataires/update", protect(lh.Update))
	mux.Handle("/locataires/delete", protect(lh.Delete))

	// Appartement endpoints
	ah := handlers.NewAppartementHandler(services.NewAppartementService(db, gate))
	mux.Handle("/appartements", protect(listCreate(ah.List, ah.Create)))
	mux.Handle("/appartements/update", protect(ah.Update))
	mux.Handle("/appartements/delete", protect(ah.Delete))
	mux.Handle("/appartements/locataires", protect(ah.Occupations))

	// Quittance endpoints
	qsvc := services.NewQuittanceService(db, gate, cfg.Policy())
	var email notify.Sender
	simulated := cfg.SMTPHost == ""
	if simulated {
		email = &notify.SimulatedSender{Canal: "email"}
	} else {
		email = &notify.SMTPSender{Host: cfg.SMTPHost, Port: cfg.SMTPPort, User: cfg.SMTPUser, Pass: cfg.SMTPPass, From: cfg.MailFrom}
	}
	sms := &notify.SimulatedSender{Canal: "sms"}
	qh := handlers.NewQuittanceHandler(db, qsvc, email, sms, simulated, cfg.LieuEmissionDefaut)
	mux.Handle("/quittances", protect(listCreate(qh.List, qh.Generer)))
	mux.Handle("/quittances/apercu", protect(qh.Apercu))
	mux.Handle("/quittances/delete", protect(qh.Delete))
	mux.Handle("/quittances/pdf", protect(qh.PDF))
	mux.Handle("/quittances/envoyer", protect(qh.Envoyer))

	// Root placeholder
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, werr := w.Write([]byte("Quittance App API")); werr != nil {
			_ = werr
		}
	})
	//revive:enable:unused-parameter

	return middleware.Prefs(withRecover(withLogging(mux)))
}

// Simple middleware logging & recovery kept private to this package to avoid duplication.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

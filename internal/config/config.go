package config

import (
	"log"
	"os"
	"strconv"

	"github.com/diewo77/quittance-app/internal/quittance"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string

	// Politique de numérotation et d'émission (voir DESIGN.md).
	NumberingScope      quittance.Scope
	RefreshDateEmission bool

	// Lieu d'émission proposé par défaut quand le formulaire n'en donne pas.
	LieuEmissionDefaut string

	// SMTP pour l'envoi des quittances; vide => envoi simulé.
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:quittances.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.LieuEmissionDefaut = getEnv("LIEU_EMISSION", "")

	scope := quittance.Scope(getEnv("NUMBERING_SCOPE", string(quittance.ScopeAppartement)))
	if !scope.Valid() {
		log.Printf("NUMBERING_SCOPE invalide %q, retour au scope appartement", scope)
		scope = quittance.ScopeAppartement
	}
	cfg.NumberingScope = scope
	cfg.RefreshDateEmission = ParseBool("REFRESH_DATE_EMISSION", false)

	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPPort = getEnv("SMTP_PORT", "587")
	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.MailFrom = getEnv("MAIL_FROM", "quittances@localhost")
	return cfg
}

// Policy returns the builder policy derived from the loaded flags.
func (c Config) Policy() quittance.Policy {
	return quittance.Policy{Scope: c.NumberingScope, RefreshDateEmission: c.RefreshDateEmission}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}

package config

import (
	"testing"

	"github.com/diewo77/quittance-app/internal/quittance"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.NumberingScope != quittance.ScopeAppartement {
		t.Fatalf("expected default scope appartement, got %s", cfg.NumberingScope)
	}
	if cfg.RefreshDateEmission {
		t.Fatalf("date emission must be stable by default")
	}
}

func TestScopeOverride(t *testing.T) {
	t.Setenv("NUMBERING_SCOPE", "appartement_locataire")
	cfg := Load()
	if cfg.NumberingScope != quittance.ScopeAppartementLocataire {
		t.Fatalf("got %s", cfg.NumberingScope)
	}

	t.Setenv("NUMBERING_SCOPE", "n_importe_quoi")
	cfg = Load()
	if cfg.NumberingScope != quittance.ScopeAppartement {
		t.Fatalf("invalid scope should fall back, got %s", cfg.NumberingScope)
	}
}

func TestPolicy(t *testing.T) {
	t.Setenv("REFRESH_DATE_EMISSION", "true")
	cfg := Load()
	p := cfg.Policy()
	if !p.RefreshDateEmission {
		t.Fatalf("expected refresh enabled")
	}
}

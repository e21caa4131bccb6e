package i18n

import "testing"

func TestT(t *testing.T) {
	if got := T("fr", "not_found"); got != "Introuvable" {
		t.Fatalf("got %q", got)
	}
	if got := T("en", "not_found"); got != "Not found" {
		t.Fatalf("got %q", got)
	}
	// unknown language falls back to French
	if got := T("de", "not_found"); got != "Introuvable" {
		t.Fatalf("got %q", got)
	}
	// unknown code stays visible
	if got := T("fr", "mystery_code"); got != "mystery_code" {
		t.Fatalf("got %q", got)
	}
}

func TestDetectLanguage(t *testing.T) {
	if DetectLanguage("en-US,en;q=0.9") != "en" {
		t.Fatalf("expected en")
	}
	if DetectLanguage("fr-FR") != "fr" {
		t.Fatalf("expected fr")
	}
	if DetectLanguage("") != "fr" {
		t.Fatalf("default should be fr")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPrefsLanguagePrecedence(t *testing.T) {
	var got string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LangFrom(r)
	}))

	// header only
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "en" {
		t.Fatalf("header: expected en, got %q", got)
	}

	// query beats header and persists as cookie
	req = httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got != "fr" {
		t.Fatalf("query: expected fr, got %q", got)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatalf("expected lang cookie")
	}

	// cookie wins when present
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
	req.Header.Set("Accept-Language", "fr-FR")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if got != "en" {
		t.Fatalf("cookie: expected en, got %q", got)
	}
}

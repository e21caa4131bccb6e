package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSignupLoginLogout(t *testing.T) {
	db := setupHandlerTestDB(t)
	h := NewAuthHandler(db)

	// Signup
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"New@Example.com","password":"secret123","nom":"Dupont","prenom":"Marie"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.signup(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var created map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created["email"] != "new@example.com" {
		t.Fatalf("expected lowercased email, got %q", created["email"])
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatalf("expected session cookie on signup")
	}

	// Duplicate email
	req = httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":"new@example.com","password":"other"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.signup(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate got %d", w.Code)
	}

	// Login with wrong password
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"new@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.login(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	// Login ok
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"new@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.login(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	// Logout
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	w = httptest.NewRecorder()
	h.logout(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", w.Code)
	}
}

func TestSignupFormFallback(t *testing.T) {
	db := setupHandlerTestDB(t)
	h := NewAuthHandler(db)

	form := strings.NewReader("email=form@example.com&password=secret123")
	req := httptest.NewRequest(http.MethodPost, "/signup", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.signup(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
}

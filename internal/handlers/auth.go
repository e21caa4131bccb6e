package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/quittance-app/internal/auth"
	"github.com/diewo77/quittance-app/internal/httpx"
	"github.com/diewo77/quittance-app/internal/models"
)

type AuthHandler struct{ DB *gorm.DB }

func NewAuthHandler(db *gorm.DB) *AuthHandler { return &AuthHandler{DB: db} }

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/signup", h.signup)
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/logout", h.logout)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

// readCredentials accepts JSON or a classic form post.
func readCredentials(r *http.Request) (credentials, bool) {
	var c credentials
	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "application/json") {
		if err := decodeJSON(r, &c); err != nil {
			return c, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return c, false
		}
		c.Email = r.FormValue("email")
		c.Password = r.FormValue("password")
		c.Nom = r.FormValue("nom")
		c.Prenom = r.FormValue("prenom")
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return c, true
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	c, ok := readCredentials(r)
	if !ok {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	if c.Email == "" || c.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"email": "required", "password": "required"})
		return
	}
	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", c.Email).Count(&count).Error; err == nil && count > 0 {
		httpx.JSONError(w, http.StatusConflict, "validation_failed", map[string]string{"email": "taken"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	user := models.User{ID: uuid.NewString(), Email: c.Email, Password: string(hash), Nom: strings.TrimSpace(c.Nom), Prenom: strings.TrimSpace(c.Prenom)}
	if err := h.DB.Create(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	auth.CreateSession(w, user.ID)
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	c, ok := readCredentials(r)
	if !ok {
		jsonError(w, r, http.StatusBadRequest, "invalid_json")
		return
	}
	var user models.User
	if err := h.DB.Where("email = ?", c.Email).First(&user).Error; err != nil {
		jsonError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(c.Password)) != nil {
		jsonError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}
	auth.CreateSession(w, user.ID)
	httpx.JSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	auth.ClearSession(w)
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fintrackhq/fintrack/internal/models"
	"github.com/fintrackhq/fintrack/internal/services"
	"github.com/fintrackhq/fintrack/internal/store"
)

func newAuthRouter() *mux.Router {
	auth := services.NewAuthService(store.NewMemoryStore(), zap.NewNop())
	handler := NewAuthHandler(auth)

	router := mux.NewRouter()
	router.HandleFunc("/api/auth/signup", handler.HandleSignUp).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.HandleLogin).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/logout", handler.HandleLogout).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", handler.HandleCurrentUser).Methods(http.MethodGet)
	return router
}

func TestHandleSignUpLoginFlow(t *testing.T) {
	router := newAuthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret","name":"Alice"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	json.NewDecoder(rec.Body).Decode(&user)
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user %+v", user)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("me status after logout = %d, want 404", rec.Code)
	}
}

func TestHandleSignUp_DuplicateEmailConflicts(t *testing.T) {
	router := newAuthRouter()
	body := `{"email":"alice@example.com","password":"s3cret","name":"Alice"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate signup status = %d, want 409", rec.Code)
	}
}

func TestHandleLogin_WrongPasswordUnauthorized(t *testing.T) {
	router := newAuthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"alice@example.com","password":"s3cret","name":"Alice"}`)))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", rec.Code)
	}
}

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAdmin_NoHeader_Returns401(t *testing.T) {
	mw := RequireAdmin(testSecret())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/api/admin/contacts", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["success"] != false {
		t.Error("expected success=false in envelope")
	}
}

func TestRequireAdmin_InvalidToken_Returns401(t *testing.T) {
	mw := RequireAdmin(testSecret())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_NonBearerScheme_Returns401(t *testing.T) {
	mw := RequireAdmin(testSecret())

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called")
	})

	req := httptest.NewRequest("GET", "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Basic YWRtaW46cGFzcw==")
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_ValidToken_CallsNextWithEmail(t *testing.T) {
	token, err := NewAdminToken("admin@atelier-lumen.fr", testSecret())
	if err != nil {
		t.Fatalf("token issue failed: %v", err)
	}
	mw := RequireAdmin(testSecret())

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = AdminEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/admin/contacts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "admin@atelier-lumen.fr" {
		t.Errorf("admin email = %q, want admin@atelier-lumen.fr", gotEmail)
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atelier-lumen/backend/internal/limiter"
	"github.com/atelier-lumen/backend/internal/service"
	"github.com/atelier-lumen/backend/pkg/auth"
)

// loginRule bounds admin login attempts per IP. On top of it, the failure
// tracker blocks an IP for a full hour after the third failed attempt; both
// layers are kept deliberately.
var loginRule = limiter.Rule{Limit: 3, Window: time.Hour}

// AuthHandler issues and verifies admin panel tokens.
type AuthHandler struct {
	authService service.AuthService
	limits      limiter.Store
	failures    *limiter.FailureTracker
	secret      []byte
	dev         bool
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, limits limiter.Store, failures *limiter.FailureTracker, secret []byte, dev bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limits:      limits,
		failures:    failures,
		secret:      secret,
		dev:         dev,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// Login handles POST /api/admin/auth. Failure text stays identical across
// unknown email, wrong password and blocked IP beyond the status code, so a
// caller learns nothing about which check failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ClientIP(r)

	if blocked, wait := h.failures.Blocked(ip); blocked {
		slog.Info("blocked admin login attempt", "ip", ip, "wait", wait)
		writeRateLimited(w, limiter.Decision{RetryAfter: wait})
		return
	}

	dec, err := h.limits.Allow(r.Context(), limiter.Identity{Namespace: "login", Key: ip}, loginRule)
	if err != nil {
		slog.Warn("rate limit check failed, admitting", "error", err)
	} else if !dec.Allowed {
		writeRateLimited(w, dec)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "E-mail et mot de passe requis")
		return
	}

	admin, err := h.authService.Authenticate(r.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.failures.RecordFailure(ip)
			writeError(w, http.StatusUnauthorized, "Identifiants invalides")
			return
		}
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "admin_auth"})
		return
	}

	token, err := auth.NewAdminToken(admin.Email, h.secret)
	if err != nil {
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "admin_auth"})
		return
	}

	slog.Info("admin login", "admin_id", admin.ID, "ip", ip)
	writeJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(auth.TokenTTL.Seconds()),
	})
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success bool `json:"success"`
	Valid   bool `json:"valid"`
}

// Verify handles POST /api/admin/verify: the frontend uses it to decide
// whether a stored token is still worth presenting.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	_, err := auth.VerifyAdminToken(req.Token, h.secret)
	writeJSON(w, http.StatusOK, verifyResponse{Success: true, Valid: err == nil})
}

package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const adminEmailKey contextKey = "admin_email"

// AdminEmailFromContext returns the email of the verified admin, if any.
func AdminEmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminEmailKey).(string)
	return v, ok
}

// WithAdminEmail stores the verified admin email in the context.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// RequireAdmin gates a handler behind a valid admin bearer token. The client
// always receives the same vague 401; the precise failure reason only goes to
// the log.
func RequireAdmin(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				slog.Debug("admin auth rejected", "reason", "missing bearer token", "path", r.URL.Path)
				unauthorized(w)
				return
			}

			claims, err := VerifyAdminToken(token, secret)
			if err != nil {
				slog.Debug("admin auth rejected", "reason", err.Error(), "path", r.URL.Path)
				unauthorized(w)
				return
			}

			ctx := WithAdminEmail(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   "Jeton invalide ou expiré",
	})
}

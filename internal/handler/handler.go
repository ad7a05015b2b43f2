package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/atelier-lumen/backend/internal/errtrack"
	"github.com/atelier-lumen/backend/internal/limiter"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler holds cross-cutting dependencies: the DB pool for the health check
// and the allowed frontend origin for CORS.
type Handler struct {
	db          *pgxpool.Pool
	frontendURL string
}

func New(db *pgxpool.Pool, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// errorResponse is the uniform failure envelope for every endpoint.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

// writeRateLimited sends the 429 envelope with a Retry-After hint.
func writeRateLimited(w http.ResponseWriter, dec limiter.Decision) {
	w.Header().Set("Retry-After", retryAfterSeconds(dec.RetryAfter))
	writeError(w, http.StatusTooManyRequests, "Trop de requêtes. Veuillez réessayer plus tard.")
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// writeUpstreamError captures the failure to the error tracker and returns a
// generic 500. The real error text is only echoed in development mode.
func writeUpstreamError(w http.ResponseWriter, err error, dev bool, tags map[string]string) {
	errtrack.Capture(err, tags)
	msg := "Une erreur interne est survenue"
	if dev {
		msg = err.Error()
	}
	writeError(w, http.StatusInternalServerError, msg)
}

package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atelier-lumen/backend/internal/limiter"
	"github.com/atelier-lumen/backend/internal/model"
	"github.com/atelier-lumen/backend/internal/repository"
	"github.com/atelier-lumen/backend/internal/service"
	"github.com/atelier-lumen/backend/internal/validate"
)

// contactRule bounds contact form submissions per IP.
var contactRule = limiter.Rule{Limit: 5, Window: 10 * time.Minute}

// ContactHandler handles contact form submission and the admin panel's
// listing and deletion of submissions.
type ContactHandler struct {
	contactService service.ContactService
	limits         limiter.Store
	dev            bool
}

// NewContactHandler creates a ContactHandler with the given dependencies.
func NewContactHandler(contactService service.ContactService, limits limiter.Store, dev bool) *ContactHandler {
	return &ContactHandler{contactService: contactService, limits: limits, dev: dev}
}

// submitRequest is the expected JSON body for POST /api/contact.
// Honeypot is hidden in the form; humans leave it empty.
type submitRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot"`
}

type submitResponse struct {
	Success   bool  `json:"success"`
	ContactID int64 `json:"contactId"`
}

// Submit handles POST /api/contact. The pipeline order is fixed: client IP,
// rate limit, honeypot, field validation, then the single side effect.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ip := ClientIP(r)

	dec, err := h.limits.Allow(r.Context(), limiter.Identity{Namespace: "contact", Key: ip}, contactRule)
	if err != nil {
		// Counter store unreachable: admit rather than take the form down.
		slog.Warn("rate limit check failed, admitting", "error", err)
	} else if !dec.Allowed {
		writeRateLimited(w, dec)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if strings.TrimSpace(req.Honeypot) != "" {
		slog.Info("honeypot tripped", "ip", ip)
		writeError(w, http.StatusBadRequest, "Spam detected")
		return
	}

	fullName := validate.Sanitize(req.FullName, validate.MaxContactFieldLength)
	if fullName == "" {
		writeError(w, http.StatusBadRequest, "Le nom complet est requis")
		return
	}

	email := validate.Sanitize(req.Email, validate.MaxContactFieldLength)
	if !validate.ValidEmail(email) {
		writeError(w, http.StatusBadRequest, "Adresse e-mail invalide")
		return
	}

	phone := validate.Sanitize(req.Phone, validate.MaxContactFieldLength)
	if !validate.ValidPhone(phone) {
		writeError(w, http.StatusBadRequest, "Numéro de téléphone invalide")
		return
	}

	if !validate.ValidSubject(req.Subject) {
		writeError(w, http.StatusBadRequest, "Sujet invalide")
		return
	}

	sub := &model.ContactSubmission{
		FullName:  fullName,
		Email:     email,
		Phone:     phone,
		Subject:   req.Subject,
		Message:   validate.Sanitize(req.Message, validate.MaxContactFieldLength),
		IPAddress: ip,
	}

	if err := h.contactService.Submit(r.Context(), sub); err != nil {
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "contact"})
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, ContactID: sub.ID})
}

// adminListResponse is the JSON response for GET /api/admin/contacts.
type adminListResponse struct {
	Success  bool                       `json:"success"`
	Contacts []*model.ContactSubmission `json:"contacts"`
}

// AdminList handles GET /api/admin/contacts (behind auth.RequireAdmin).
// Supports limit/offset query params; always newest first.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{Limit: 50, Offset: 0}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 200 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	subs, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "admin_contacts"})
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}

	writeJSON(w, http.StatusOK, adminListResponse{Success: true, Contacts: subs})
}

type adminDeleteResponse struct {
	Success bool `json:"success"`
}

// AdminDelete handles DELETE /api/admin/contacts/{id} (behind auth.RequireAdmin).
func (h *ContactHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Identifiant invalide")
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message introuvable")
			return
		}
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "admin_contacts_delete"})
		return
	}

	writeJSON(w, http.StatusOK, adminDeleteResponse{Success: true})
}

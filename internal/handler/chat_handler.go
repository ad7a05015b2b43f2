package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/atelier-lumen/backend/internal/limiter"
	"github.com/atelier-lumen/backend/internal/service"
	"github.com/atelier-lumen/backend/internal/validate"
	"github.com/atelier-lumen/backend/pkg/llm"
)

// chatRule bounds chat messages per IP. Each admitted message is a billed
// upstream call.
var chatRule = limiter.Rule{Limit: 10, Window: time.Minute}

// ChatHandler proxies the site chat widget to the language model.
type ChatHandler struct {
	chatService service.ChatService
	limits      limiter.Store
	dev         bool
}

// NewChatHandler creates a ChatHandler with the given dependencies.
func NewChatHandler(chatService service.ChatService, limits limiter.Store, dev bool) *ChatHandler {
	return &ChatHandler{chatService: chatService, limits: limits, dev: dev}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// Send handles POST /api/chat: rate limit first (reject before any parsing
// cost), then validate, then the billed upstream call.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	ip := ClientIP(r)

	dec, err := h.limits.Allow(r.Context(), limiter.Identity{Namespace: "chat", Key: ip}, chatRule)
	if err != nil {
		slog.Warn("rate limit check failed, admitting", "error", err)
	} else if !dec.Allowed {
		writeRateLimited(w, dec)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	message := validate.Sanitize(req.Message, validate.MaxChatMessageLength)
	if message == "" {
		writeError(w, http.StatusBadRequest, "Le message est requis")
		return
	}

	reply, err := h.chatService.Send(r.Context(), message)
	if err != nil {
		if errors.Is(err, llm.ErrOverBudget) {
			writeRateLimited(w, limiter.Decision{RetryAfter: time.Second})
			return
		}
		writeUpstreamError(w, err, h.dev, map[string]string{"endpoint": "chat"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Success: true, Reply: reply})
}

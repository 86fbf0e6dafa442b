package api

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	apperrors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/gateway"
	"portfolio/backend/internal/interfaces"
	"portfolio/backend/internal/model"
)

// ChatPart mirrors the wire format of one history fragment.
type ChatPart struct {
	Text string `json:"text"`
}

// ChatTurn is one prior conversation turn as sent by the UI. The UI speaks
// the backend's role vocabulary ("user"/"model").
type ChatTurn struct {
	Role  string     `json:"role" validate:"required,oneof=user model"`
	Parts []ChatPart `json:"parts" validate:"required,min=1,dive"`
}

// ChatRequest is the chat endpoint's input contract. The 1000-character cap
// here matches the presentation layer's looser limit; the gateway enforces
// the pipeline's stricter 250-character cap on the sanitized text.
type ChatRequest struct {
	Message string     `json:"message" validate:"required,max=1000"`
	History []ChatTurn `json:"history" validate:"omitempty,max=50,dive"`
}

type ChatHandler struct {
	service interfaces.ChatService
	limiter *gateway.RateLimiter
}

func NewChatHandler(svc interfaces.ChatService, limiter *gateway.RateLimiter) *ChatHandler {
	return &ChatHandler{service: svc, limiter: limiter}
}

// HandleChat processes one chat turn: decode, validate, rate-limit,
// sanitize, then hand off to the pipeline. Only gateway-level failures
// surface as errors; a generation failure still yields a 200 with the
// fallback responder's text.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, apperrors.ErrValidation)
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	if !h.limiter.Allow(clientKey(r)) {
		respondWithError(w, apperrors.ErrRateLimited)
		return
	}

	sanitized, err := gateway.Sanitize(req.Message)
	if err != nil {
		respondWithError(w, err)
		return
	}

	reply := h.service.HandleMessage(r.Context(), sanitized, toHistory(req.History))
	respondWithJSON(w, http.StatusOK, reply)
}

// toHistory maps wire turns onto pipeline messages, translating the
// backend's "model" role back to "assistant".
func toHistory(turns []ChatTurn) []model.ChatMessage {
	history := make([]model.ChatMessage, 0, len(turns))
	for _, turn := range turns {
		role := model.RoleUser
		if turn.Role == "model" {
			role = model.RoleAssistant
		}
		var content string
		for _, p := range turn.Parts {
			content += p.Text
		}
		history = append(history, model.ChatMessage{
			ID:        uuid.NewString(),
			Role:      role,
			Content:   content,
			Timestamp: time.Now(),
			Status:    model.StatusSent,
		})
	}
	return history
}

// clientKey is the best-effort client identifier for rate limiting: the
// remote host, with proxy headers already resolved by the RealIP middleware.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ProjectHandler serves the cached repository metadata to the site's
// project widgets.
type ProjectHandler struct {
	service interfaces.ProjectService
}

func NewProjectHandler(svc interfaces.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

func (h *ProjectHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Projects(r.Context()))
}

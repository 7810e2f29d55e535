package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/narathia/narathia-go/internal/chat"
	"github.com/narathia/narathia-go/internal/middleware"
	"github.com/narathia/narathia-go/internal/model"
)

// ChatHandler handles HTTP requests that relay chat messages to the
// automation webhook.
type ChatHandler struct {
	relay *chat.Relay
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(relay *chat.Relay) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// HandleSend handles POST /api/v1/chat requests.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("message is required"))
		return
	}

	reply, err := h.relay.Send(r.Context(), userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNotConfigured):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse("chat is not available"))
		case errors.Is(err, chat.ErrUnavailable):
			slog.Warn("chat webhook call failed", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse("chat is temporarily unavailable"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{Reply: reply})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// MessageHandler handles direct-message requests
type MessageHandler struct {
	messageService *services.MessageService
	hub            *services.Hub
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService, hub *services.Hub) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		hub:            hub,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// Send handles POST /api/messages. The message is persisted first; the relay
// to connected peers is advisory.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	senderID := middleware.GetUserID(r.Context())

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.messageService.Send(r.Context(), senderID, req.ReceiverID, req.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	room := services.RoomID(senderID, req.ReceiverID)
	h.hub.Broadcast(room, nil, services.WSMessage{
		Type:    "message",
		Room:    room,
		Message: msg,
	})

	respondJSON(w, http.StatusOK, msg)
}

// List handles GET /api/messages/{other_user_id}
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	otherID := chi.URLParam(r, "other_user_id")

	messages, err := h.messageService.ListBetween(r.Context(), userID, otherID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"skillswap-backend/internal/middleware"
	"skillswap-backend/internal/models"
	"skillswap-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SessionHandler handles session booking and lifecycle requests
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type bookRequest struct {
	TeacherID     string `json:"teacherId"`
	Skill         string `json:"skill"`
	ScheduledTime string `json:"scheduledTime"`
}

// Book handles POST /api/sessions/book
func (h *SessionHandler) Book(w http.ResponseWriter, r *http.Request) {
	learnerID := middleware.GetUserID(r.Context())

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Book(r.Context(), learnerID, req.TeacherID, req.Skill, req.ScheduledTime)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("session_id", session.ID).
		Str("learner_id", learnerID).
		Str("teacher_id", req.TeacherID).
		Str("skill", req.Skill).
		Msg("Session booked")

	respondJSON(w, http.StatusOK, session)
}

// List handles GET /api/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	sessions, err := h.sessionService.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	respondJSON(w, http.StatusOK, sessions)
}

// Complete handles PATCH /api/sessions/complete/{session_id}
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := h.sessionService.Complete(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("session_id", session.ID).Msg("Session completed")

	respondJSON(w, http.StatusOK, session)
}

// Cancel handles PATCH /api/sessions/cancel/{session_id}
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	session, err := h.sessionService.Cancel(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("session_id", session.ID).Msg("Session cancelled")

	respondJSON(w, http.StatusOK, session)
}

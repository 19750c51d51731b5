package handlers

import (
	"encoding/json"
	"net/http"

	"skillswap-backend/internal/models"
	"skillswap-backend/internal/services"
)

// SkillHandler handles skill catalog requests
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// ListSkills handles GET /api/skills
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillService.ListSkills(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	respondJSON(w, http.StatusOK, skills)
}

type createSkillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// CreateSkill handles POST /api/skills
func (h *SkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req createSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	skill, err := h.skillService.CreateSkill(r.Context(), req.Name, req.Category, req.Description)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, skill)
}

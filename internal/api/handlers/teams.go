package handlers

import (
	"net/http"

	"github.com/dom/nba-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TeamHandler struct {
	teamService *service.TeamService
	logger      *zap.Logger
}

func NewTeamHandler(teamService *service.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{teamService: teamService, logger: logger}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	// Matching the original surface: listings default to active franchises,
	// ?active=false includes historical eras.
	activeOnly := r.URL.Query().Get("active") != "false"

	page, err := h.teamService.List(r.Context(), activeOnly, pageRequest(r))
	if err != nil {
		h.logger.Error("team listing failed", zap.Error(err))
		writeError(w, queryStatus(err), "failed to list teams")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *TeamHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	abbrev := chi.URLParam(r, "abbrev")
	if abbrev == "" {
		writeError(w, http.StatusBadRequest, "missing team abbreviation")
		return
	}

	profile, err := h.teamService.GetProfile(r.Context(), abbrev)
	if err != nil {
		h.logger.Error("team profile failed", zap.String("abbreviation", abbrev), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load team profile")
		return
	}
	// profile.Team is null for an unknown abbreviation; that is the contract,
	// not a 404.
	writeJSON(w, http.StatusOK, profile)
}

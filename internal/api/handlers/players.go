package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/nba-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlayerHandler struct {
	playerService *service.PlayerService
	logger        *zap.Logger
}

func NewPlayerHandler(playerService *service.PlayerService, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, logger: logger}
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.playerService.List(r.Context(), pageRequest(r))
	if err != nil {
		h.logger.Error("player listing failed", zap.Error(err))
		writeError(w, queryStatus(err), "failed to list players")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *PlayerHandler) Directory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.playerService.Directory(r.Context(), limit)
	if err != nil {
		h.logger.Error("player directory failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to build player directory")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *PlayerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	brefID := chi.URLParam(r, "brefID")
	if brefID == "" {
		writeError(w, http.StatusBadRequest, "missing player id")
		return
	}

	profile, err := h.playerService.GetProfile(r.Context(), brefID)
	if err != nil {
		h.logger.Error("player profile failed", zap.String("bref_id", brefID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load player profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

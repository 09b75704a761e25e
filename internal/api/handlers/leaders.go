package handlers

import (
	"net/http"

	"github.com/dom/nba-hub/internal/service"
	"go.uber.org/zap"
)

type LeaderHandler struct {
	leaderService *service.LeaderService
	logger        *zap.Logger
}

func NewLeaderHandler(leaderService *service.LeaderService, logger *zap.Logger) *LeaderHandler {
	return &LeaderHandler{leaderService: leaderService, logger: logger}
}

func (h *LeaderHandler) GetSeasonLeaders(w http.ResponseWriter, r *http.Request) {
	year, ok := seasonYearParam(w, r)
	if !ok {
		return
	}

	leaders, err := h.leaderService.GetSeasonLeaders(r.Context(), year)
	if err != nil {
		h.logger.Error("season leaders query failed", zap.Int("season_year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to compute season leaders")
		return
	}

	writeJSON(w, http.StatusOK, leaders)
}

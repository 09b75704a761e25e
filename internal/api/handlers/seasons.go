package handlers

import (
	"net/http"
	"strconv"

	"github.com/dom/nba-hub/internal/service"
	"go.uber.org/zap"
)

type SeasonHandler struct {
	seasonService *service.SeasonService
	logger        *zap.Logger
}

func NewSeasonHandler(seasonService *service.SeasonService, logger *zap.Logger) *SeasonHandler {
	return &SeasonHandler{seasonService: seasonService, logger: logger}
}

func (h *SeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	leagueID, _ := strconv.Atoi(r.URL.Query().Get("league"))

	seasons, err := h.seasonService.List(r.Context(), leagueID)
	if err != nil {
		h.logger.Error("season listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list seasons")
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

func (h *SeasonHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, ok := seasonYearParam(w, r)
	if !ok {
		return
	}

	summary, err := h.seasonService.GetSummary(r.Context(), year)
	if err != nil {
		h.logger.Error("season summary failed", zap.Int("season_year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load season summary")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *SeasonHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	year, ok := seasonYearParam(w, r)
	if !ok {
		return
	}

	picks, err := h.seasonService.ListDraft(r.Context(), year)
	if err != nil {
		h.logger.Error("draft listing failed", zap.Int("season_year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list draft picks")
		return
	}
	writeJSON(w, http.StatusOK, picks)
}

func (h *SeasonHandler) GetAwards(w http.ResponseWriter, r *http.Request) {
	year, ok := seasonYearParam(w, r)
	if !ok {
		return
	}

	awards, err := h.seasonService.ListAwards(r.Context(), year)
	if err != nil {
		h.logger.Error("award listing failed", zap.Int("season_year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list awards")
		return
	}
	writeJSON(w, http.StatusOK, awards)
}

func (h *SeasonHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	year, ok := seasonYearParam(w, r)
	if !ok {
		return
	}

	transactions, err := h.seasonService.ListTransactions(r.Context(), year)
	if err != nil {
		h.logger.Error("transaction listing failed", zap.Int("season_year", year), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	writeJSON(w, http.StatusOK, transactions)
}

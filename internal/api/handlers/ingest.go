package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	errUnknownCollection = errors.New("unknown collection")
	errBadBody           = errors.New("request body is not a JSON array of rows")
)

type IngestHandler struct {
	ingestService *service.IngestService
	logger        *zap.Logger
}

func NewIngestHandler(ingestService *service.IngestService, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{ingestService: ingestService, logger: logger}
}

// Ingest accepts a JSON array of rows for one named collection and inserts
// them if absent. Any malformed row rejects the whole batch with a 422.
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	report, err := h.dispatch(r, collection)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, report)
	case errors.Is(err, errUnknownCollection):
		writeError(w, http.StatusNotFound, "unknown collection: "+collection)
	case errors.Is(err, errBadBody):
		writeError(w, http.StatusBadRequest, errBadBody.Error())
	case isMalformedRow(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("ingest failed", zap.String("collection", collection), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to ingest batch")
	}
}

func isMalformedRow(err error) bool {
	return errors.Is(err, domain.ErrMissingNaturalKey) ||
		errors.Is(err, domain.ErrMissingEntityKey) ||
		errors.Is(err, domain.ErrMissingSeasonYear) ||
		errors.Is(err, domain.ErrMissingGames) ||
		errors.Is(err, domain.ErrNegativeGames)
}

func decodeRows[T any](r *http.Request) ([]*T, error) {
	var rows []*T
	if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
		return nil, errBadBody
	}
	return rows, nil
}

func (h *IngestHandler) dispatch(r *http.Request, collection string) (*service.IngestReport, error) {
	ctx := r.Context()
	switch collection {
	case "leagues":
		rows, err := decodeRows[domain.League](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Leagues(ctx, rows)
	case "seasons":
		rows, err := decodeRows[domain.Season](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Seasons(ctx, rows)
	case "arenas":
		rows, err := decodeRows[domain.Arena](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Arenas(ctx, rows)
	case "teams":
		rows, err := decodeRows[domain.Team](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Teams(ctx, rows)
	case "team_history":
		rows, err := decodeRows[domain.TeamHistory](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.TeamHistory(ctx, rows)
	case "players":
		rows, err := decodeRows[domain.Player](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Players(ctx, rows)
	case "coaches":
		rows, err := decodeRows[domain.Coach](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Coaches(ctx, rows)
	case "referees":
		rows, err := decodeRows[domain.Referee](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Referees(ctx, rows)
	case "games":
		rows, err := decodeRows[domain.Game](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Games(ctx, rows)
	case "player_boxscores":
		rows, err := decodeRows[domain.PlayerBoxscore](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.PlayerBoxscores(ctx, rows)
	case "team_boxscores":
		rows, err := decodeRows[domain.TeamBoxscore](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.TeamBoxscores(ctx, rows)
	case "player_season_totals":
		rows, err := decodeRows[domain.PlayerSeasonTotal](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.PlayerSeasonTotals(ctx, rows)
	case "player_season_advanced":
		rows, err := decodeRows[domain.PlayerSeasonAdvanced](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.PlayerSeasonAdvanced(ctx, rows)
	case "team_season_totals":
		rows, err := decodeRows[domain.TeamSeasonTotal](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.TeamSeasonTotals(ctx, rows)
	case "team_season_advanced":
		rows, err := decodeRows[domain.TeamSeasonAdvanced](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.TeamSeasonAdvanced(ctx, rows)
	case "standings":
		rows, err := decodeRows[domain.Standing](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Standings(ctx, rows)
	case "drafts":
		rows, err := decodeRows[domain.DraftPick](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Drafts(ctx, rows)
	case "awards":
		rows, err := decodeRows[domain.Award](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Awards(ctx, rows)
	case "transactions":
		rows, err := decodeRows[domain.Transaction](r)
		if err != nil {
			return nil, err
		}
		return h.ingestService.Transactions(ctx, rows)
	default:
		return nil, errUnknownCollection
	}
}

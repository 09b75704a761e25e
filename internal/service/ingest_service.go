package service

import (
	"context"
	"fmt"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/metrics"
	"github.com/dom/nba-hub/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestReport summarizes one insert-if-absent batch. Skipped rows already
// existed under the same natural key; rows are never updated in place.
type IngestReport struct {
	BatchID    string `json:"batch_id"`
	Collection string `json:"collection"`
	Received   int    `json:"received"`
	Inserted   int64  `json:"inserted"`
	Skipped    int64  `json:"skipped"`
}

type IngestService struct {
	repos  *repository.Repositories
	logger *zap.Logger
}

func NewIngestService(repos *repository.Repositories, logger *zap.Logger) *IngestService {
	return &IngestService{repos: repos, logger: logger}
}

// ingestBatch validates every row before anything is written: a single
// malformed row rejects the whole batch. Valid batches go to the store in one
// insert-if-absent write.
func ingestBatch[T any](ctx context.Context, s *IngestService, collection string, rows []*T,
	validate func(*T) error,
	insert func(context.Context, []*T) (int64, error),
) (*IngestReport, error) {
	for i, row := range rows {
		if err := validate(row); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", collection, i, err)
		}
	}

	inserted, err := insert(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", collection, err)
	}

	report := &IngestReport{
		BatchID:    uuid.NewString(),
		Collection: collection,
		Received:   len(rows),
		Inserted:   inserted,
		Skipped:    int64(len(rows)) - inserted,
	}
	metrics.IngestRowsTotal.WithLabelValues(collection, "inserted").Add(float64(report.Inserted))
	metrics.IngestRowsTotal.WithLabelValues(collection, "skipped").Add(float64(report.Skipped))
	s.logger.Info("ingested batch",
		zap.String("batch_id", report.BatchID),
		zap.String("collection", collection),
		zap.Int("received", report.Received),
		zap.Int64("inserted", report.Inserted),
		zap.Int64("skipped", report.Skipped))
	return report, nil
}

func requireKey(s string) error {
	if s == "" {
		return domain.ErrMissingNaturalKey
	}
	return nil
}

func requireSeason(year int) error {
	if year == 0 {
		return domain.ErrMissingSeasonYear
	}
	return nil
}

// requireGames distinguishes an omitted games count from an explicit zero. A
// zero-game line is legitimate; an absent one is malformed, never coerced.
func requireGames(games *int) error {
	if games == nil {
		return domain.ErrMissingGames
	}
	if *games < 0 {
		return domain.ErrNegativeGames
	}
	return nil
}

func (s *IngestService) Leagues(ctx context.Context, rows []*domain.League) (*IngestReport, error) {
	return ingestBatch(ctx, s, "leagues", rows, func(r *domain.League) error {
		if r.LeagueID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return requireKey(r.LeagueCode)
	}, s.repos.League.InsertIfAbsent)
}

func (s *IngestService) Seasons(ctx context.Context, rows []*domain.Season) (*IngestReport, error) {
	return ingestBatch(ctx, s, "seasons", rows, func(r *domain.Season) error {
		if r.SeasonID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.Season.InsertIfAbsent)
}

func (s *IngestService) Arenas(ctx context.Context, rows []*domain.Arena) (*IngestReport, error) {
	return ingestBatch(ctx, s, "arenas", rows, func(r *domain.Arena) error {
		if r.ArenaID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return nil
	}, s.repos.Arena.InsertIfAbsent)
}

func (s *IngestService) Teams(ctx context.Context, rows []*domain.Team) (*IngestReport, error) {
	return ingestBatch(ctx, s, "teams", rows, func(r *domain.Team) error {
		if r.TeamID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return nil
	}, s.repos.Team.InsertIfAbsent)
}

func (s *IngestService) TeamHistory(ctx context.Context, rows []*domain.TeamHistory) (*IngestReport, error) {
	return ingestBatch(ctx, s, "team_history", rows, func(r *domain.TeamHistory) error {
		if r.TeamHistoryID == 0 || r.TeamID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return nil
	}, s.repos.TeamHistory.InsertIfAbsent)
}

func (s *IngestService) Players(ctx context.Context, rows []*domain.Player) (*IngestReport, error) {
	return ingestBatch(ctx, s, "players", rows, func(r *domain.Player) error {
		if r.PlayerID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return nil
	}, s.repos.Player.InsertIfAbsent)
}

func (s *IngestService) Coaches(ctx context.Context, rows []*domain.Coach) (*IngestReport, error) {
	return ingestBatch(ctx, s, "coaches", rows, func(r *domain.Coach) error {
		return requireKey(r.CoachID)
	}, s.repos.Coach.InsertIfAbsent)
}

func (s *IngestService) Referees(ctx context.Context, rows []*domain.Referee) (*IngestReport, error) {
	return ingestBatch(ctx, s, "referees", rows, func(r *domain.Referee) error {
		return requireKey(r.RefereeID)
	}, s.repos.Referee.InsertIfAbsent)
}

func (s *IngestService) Games(ctx context.Context, rows []*domain.Game) (*IngestReport, error) {
	return ingestBatch(ctx, s, "games", rows, func(r *domain.Game) error {
		return requireKey(r.GameID)
	}, s.repos.Game.InsertIfAbsent)
}

func (s *IngestService) PlayerBoxscores(ctx context.Context, rows []*domain.PlayerBoxscore) (*IngestReport, error) {
	return ingestBatch(ctx, s, "player_boxscores", rows, func(r *domain.PlayerBoxscore) error {
		if r.PlayerID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return requireKey(r.GameID)
	}, s.repos.PlayerBoxscore.InsertIfAbsent)
}

func (s *IngestService) TeamBoxscores(ctx context.Context, rows []*domain.TeamBoxscore) (*IngestReport, error) {
	return ingestBatch(ctx, s, "team_boxscores", rows, func(r *domain.TeamBoxscore) error {
		if r.TeamID == 0 {
			return domain.ErrMissingNaturalKey
		}
		return requireKey(r.GameID)
	}, s.repos.TeamBoxscore.InsertIfAbsent)
}

func (s *IngestService) PlayerSeasonTotals(ctx context.Context, rows []*domain.PlayerSeasonTotal) (*IngestReport, error) {
	return ingestBatch(ctx, s, "player_season_totals", rows, func(r *domain.PlayerSeasonTotal) error {
		if err := requireKey(r.PlayerBrefID); err != nil {
			return domain.ErrMissingEntityKey
		}
		if err := requireSeason(r.SeasonYear); err != nil {
			return err
		}
		return requireGames(r.Games)
	}, s.repos.PlayerStats.InsertTotalsIfAbsent)
}

func (s *IngestService) PlayerSeasonAdvanced(ctx context.Context, rows []*domain.PlayerSeasonAdvanced) (*IngestReport, error) {
	return ingestBatch(ctx, s, "player_season_advanced", rows, func(r *domain.PlayerSeasonAdvanced) error {
		if err := requireKey(r.PlayerBrefID); err != nil {
			return domain.ErrMissingEntityKey
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.PlayerStats.InsertAdvancedIfAbsent)
}

func (s *IngestService) TeamSeasonTotals(ctx context.Context, rows []*domain.TeamSeasonTotal) (*IngestReport, error) {
	return ingestBatch(ctx, s, "team_season_totals", rows, func(r *domain.TeamSeasonTotal) error {
		if err := requireKey(r.TeamAbbrev); err != nil {
			return domain.ErrMissingEntityKey
		}
		if err := requireSeason(r.SeasonYear); err != nil {
			return err
		}
		return requireGames(r.Games)
	}, s.repos.TeamStats.InsertTotalsIfAbsent)
}

func (s *IngestService) TeamSeasonAdvanced(ctx context.Context, rows []*domain.TeamSeasonAdvanced) (*IngestReport, error) {
	return ingestBatch(ctx, s, "team_season_advanced", rows, func(r *domain.TeamSeasonAdvanced) error {
		if err := requireKey(r.TeamAbbrev); err != nil {
			return domain.ErrMissingEntityKey
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.TeamStats.InsertAdvancedIfAbsent)
}

func (s *IngestService) Standings(ctx context.Context, rows []*domain.Standing) (*IngestReport, error) {
	return ingestBatch(ctx, s, "standings", rows, func(r *domain.Standing) error {
		if err := requireKey(r.TeamAbbrev); err != nil {
			return domain.ErrMissingEntityKey
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.Standing.InsertIfAbsent)
}

func (s *IngestService) Drafts(ctx context.Context, rows []*domain.DraftPick) (*IngestReport, error) {
	return ingestBatch(ctx, s, "drafts", rows, func(r *domain.DraftPick) error {
		if r.PickOverall == 0 {
			return domain.ErrMissingNaturalKey
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.Draft.InsertIfAbsent)
}

func (s *IngestService) Awards(ctx context.Context, rows []*domain.Award) (*IngestReport, error) {
	return ingestBatch(ctx, s, "awards", rows, func(r *domain.Award) error {
		if err := requireKey(r.AwardKey); err != nil {
			return err
		}
		if err := requireKey(r.AwardType); err != nil {
			return err
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.Award.InsertIfAbsent)
}

func (s *IngestService) Transactions(ctx context.Context, rows []*domain.Transaction) (*IngestReport, error) {
	return ingestBatch(ctx, s, "transactions", rows, func(r *domain.Transaction) error {
		if err := requireKey(r.TransactionID); err != nil {
			return err
		}
		return requireSeason(r.SeasonYear)
	}, s.repos.Transaction.InsertIfAbsent)
}

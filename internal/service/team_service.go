package service

import (
	"context"
	"fmt"

	"github.com/dom/nba-hub/internal/metrics"
	"github.com/dom/nba-hub/internal/repository"
	"github.com/dom/nba-hub/internal/stats"
	"go.uber.org/zap"
)

type TeamService struct {
	history   repository.TeamHistoryRepository
	teamStats repository.TeamStatsRepository
	standings repository.StandingRepository
	logger    *zap.Logger
}

func NewTeamService(history repository.TeamHistoryRepository, teamStats repository.TeamStatsRepository, standings repository.StandingRepository, logger *zap.Logger) *TeamService {
	return &TeamService{history: history, teamStats: teamStats, standings: standings, logger: logger}
}

// List pages team identity records, optionally only currently-active ones.
func (s *TeamService) List(ctx context.Context, activeOnly bool, page repository.PageRequest) (*repository.TeamHistoryPage, error) {
	metrics.QueriesTotal.WithLabelValues("team_listing").Inc()
	return s.history.List(ctx, activeOnly, page)
}

// GetProfile assembles a franchise's detail view for one abbreviation. An
// abbreviation with no identity records yields a profile with Team == nil;
// callers surface that as "unknown team" rather than fabricating one.
func (s *TeamService) GetProfile(ctx context.Context, abbrev string) (*stats.TeamProfile, error) {
	metrics.QueriesTotal.WithLabelValues("team_profile").Inc()

	history, err := s.history.ListByAbbreviation(ctx, abbrev)
	if err != nil {
		return nil, fmt.Errorf("fetch identity records for %s: %w", abbrev, err)
	}
	totals, err := s.teamStats.TotalsByTeam(ctx, abbrev)
	if err != nil {
		return nil, fmt.Errorf("fetch totals for %s: %w", abbrev, err)
	}
	advanced, err := s.teamStats.AdvancedByTeam(ctx, abbrev)
	if err != nil {
		return nil, fmt.Errorf("fetch advanced for %s: %w", abbrev, err)
	}
	standings, err := s.standings.ByTeam(ctx, abbrev)
	if err != nil {
		return nil, fmt.Errorf("fetch standings for %s: %w", abbrev, err)
	}

	profile, activeCount := stats.ComposeTeamProfile(history, totals, advanced, standings)
	if activeCount > 1 {
		metrics.IdentityAmbiguousTotal.Inc()
		s.logger.Warn("multiple active identity records for abbreviation",
			zap.String("abbreviation", abbrev),
			zap.Int("active_records", activeCount))
	}
	return &profile, nil
}

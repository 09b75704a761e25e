package service

import (
	"context"
	"fmt"

	"github.com/dom/nba-hub/internal/metrics"
	"github.com/dom/nba-hub/internal/repository"
	"github.com/dom/nba-hub/internal/stats"
	"go.uber.org/zap"
)

// SeasonLeaders maps each leaderboard metric to its top rows for one season.
type SeasonLeaders map[stats.Metric][]stats.LeaderboardRow

type LeaderService struct {
	playerStats repository.PlayerStatsRepository
	cache       *QueryCache
	logger      *zap.Logger
}

func NewLeaderService(playerStats repository.PlayerStatsRepository, cache *QueryCache, logger *zap.Logger) *LeaderService {
	return &LeaderService{playerStats: playerStats, cache: cache, logger: logger}
}

// GetSeasonLeaders aggregates the season's player totals once and ranks the
// same aggregation independently for each metric. A season with no rows
// yields five empty leaderboards, not an error.
func (s *LeaderService) GetSeasonLeaders(ctx context.Context, seasonYear int) (SeasonLeaders, error) {
	metrics.QueriesTotal.WithLabelValues("season_leaders").Inc()

	cacheKey := fmt.Sprintf("leaders:%d", seasonYear)
	cached := make(SeasonLeaders)
	if s.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	rows, err := s.playerStats.TotalsBySeason(ctx, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("fetch season totals: %w", err)
	}

	agg, err := stats.Aggregate(stats.PlayerTotalLines(rows), stats.ByEntity, stats.PreferFirstNonEmpty)
	if err != nil {
		return nil, fmt.Errorf("aggregate season %d: %w", seasonYear, err)
	}

	leaders := make(SeasonLeaders, len(stats.LeaderboardMetrics))
	for _, metric := range stats.LeaderboardMetrics {
		leaders[metric] = stats.Rank(agg, metric, stats.DefaultLeaderboardSize)
	}

	s.cache.Set(ctx, cacheKey, leaders)
	return leaders, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/dom/nba-hub/internal/metrics"
	"github.com/dom/nba-hub/internal/repository"
	"github.com/dom/nba-hub/internal/stats"
)

type PlayerService struct {
	players     repository.PlayerRepository
	playerStats repository.PlayerStatsRepository
}

func NewPlayerService(players repository.PlayerRepository, playerStats repository.PlayerStatsRepository) *PlayerService {
	return &PlayerService{players: players, playerStats: playerStats}
}

// List pages the raw player records by name.
func (s *PlayerService) List(ctx context.Context, page repository.PageRequest) (*repository.PlayerPage, error) {
	metrics.QueriesTotal.WithLabelValues("player_listing").Inc()
	return s.players.List(ctx, page)
}

// Directory aggregates every season-totals row into one name-sorted entry per
// player. limit <= 0 returns the full directory.
func (s *PlayerService) Directory(ctx context.Context, limit int) ([]stats.DirectoryEntry, error) {
	metrics.QueriesTotal.WithLabelValues("player_directory").Inc()

	rows, err := s.playerStats.AllTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch totals: %w", err)
	}
	return stats.ComposePlayerDirectory(rows, limit)
}

// GetProfile assembles one player's full detail view. An unknown bref id
// composes an empty profile (null season range, name = id); "no data yet" is
// a normal state, not an error.
func (s *PlayerService) GetProfile(ctx context.Context, brefID string) (*stats.PlayerProfile, error) {
	metrics.QueriesTotal.WithLabelValues("player_profile").Inc()

	totals, err := s.playerStats.TotalsByPlayer(ctx, brefID)
	if err != nil {
		return nil, fmt.Errorf("fetch totals for %s: %w", brefID, err)
	}
	advanced, err := s.playerStats.AdvancedByPlayer(ctx, brefID)
	if err != nil {
		return nil, fmt.Errorf("fetch advanced for %s: %w", brefID, err)
	}

	profile := stats.ComposePlayerProfile(brefID, totals, advanced)
	return &profile, nil
}

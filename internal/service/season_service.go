package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/metrics"
	"github.com/dom/nba-hub/internal/repository"
)

// The summary lookup pins the primary league; historical leagues (ABA, BAA)
// share the seasons table but have no summary surface.
const defaultLeagueID = 1

type SeasonSummary struct {
	Season       *domain.Season              `json:"season"`
	Standings    []domain.Standing           `json:"standings"`
	TeamTotals   []domain.TeamSeasonTotal    `json:"team_totals"`
	TeamAdvanced []domain.TeamSeasonAdvanced `json:"team_advanced"`
}

type SeasonService struct {
	seasons      repository.SeasonRepository
	standings    repository.StandingRepository
	teamStats    repository.TeamStatsRepository
	drafts       repository.DraftRepository
	awards       repository.AwardRepository
	transactions repository.TransactionRepository
	cache        *QueryCache
}

func NewSeasonService(
	seasons repository.SeasonRepository,
	standings repository.StandingRepository,
	teamStats repository.TeamStatsRepository,
	drafts repository.DraftRepository,
	awards repository.AwardRepository,
	transactions repository.TransactionRepository,
	cache *QueryCache,
) *SeasonService {
	return &SeasonService{
		seasons:      seasons,
		standings:    standings,
		teamStats:    teamStats,
		drafts:       drafts,
		awards:       awards,
		transactions: transactions,
		cache:        cache,
	}
}

// List returns seasons newest-first, optionally for one league.
func (s *SeasonService) List(ctx context.Context, leagueID int) ([]*domain.Season, error) {
	metrics.QueriesTotal.WithLabelValues("season_listing").Inc()

	var (
		seasons []*domain.Season
		err     error
	)
	if leagueID > 0 {
		seasons, err = s.seasons.ListByLeague(ctx, leagueID)
	} else {
		seasons, err = s.seasons.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch seasons: %w", err)
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].SeasonYear > seasons[j].SeasonYear
	})
	return seasons, nil
}

// GetSummary returns one season's standings and team stat tables. Season is
// nil when the year is unknown; the row sets still come back (empty) so a
// partially ingested season renders.
func (s *SeasonService) GetSummary(ctx context.Context, seasonYear int) (*SeasonSummary, error) {
	metrics.QueriesTotal.WithLabelValues("season_summary").Inc()

	cacheKey := fmt.Sprintf("season_summary:%d", seasonYear)
	var cached SeasonSummary
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	season, err := s.seasons.GetByLeagueYear(ctx, defaultLeagueID, seasonYear)
	if err != nil && !errors.Is(err, domain.ErrSeasonNotFound) {
		return nil, fmt.Errorf("fetch season %d: %w", seasonYear, err)
	}

	standings, err := s.standings.BySeason(ctx, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Losses < standings[j].Losses
	})

	teamTotals, err := s.teamStats.TotalsBySeason(ctx, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("fetch team totals: %w", err)
	}
	sort.SliceStable(teamTotals, func(i, j int) bool {
		return pointsOrZero(teamTotals[i].Points) > pointsOrZero(teamTotals[j].Points)
	})

	teamAdvanced, err := s.teamStats.AdvancedBySeason(ctx, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("fetch team advanced: %w", err)
	}
	sort.SliceStable(teamAdvanced, func(i, j int) bool {
		return teamAdvanced[i].Wins > teamAdvanced[j].Wins
	})

	summary := &SeasonSummary{
		Season:       season,
		Standings:    standings,
		TeamTotals:   teamTotals,
		TeamAdvanced: teamAdvanced,
	}
	s.cache.Set(ctx, cacheKey, summary)
	return summary, nil
}

// ListDraft returns a season's draft board in pick order.
func (s *SeasonService) ListDraft(ctx context.Context, seasonYear int) ([]domain.DraftPick, error) {
	metrics.QueriesTotal.WithLabelValues("season_draft").Inc()
	return s.drafts.BySeason(ctx, seasonYear)
}

// ListAwards returns a season's awards grouped by type, voting rank ascending
// with unranked entries last.
func (s *SeasonService) ListAwards(ctx context.Context, seasonYear int) ([]domain.Award, error) {
	metrics.QueriesTotal.WithLabelValues("season_awards").Inc()
	return s.awards.BySeason(ctx, seasonYear)
}

// ListTransactions returns a season's transactions in id order.
func (s *SeasonService) ListTransactions(ctx context.Context, seasonYear int) ([]domain.Transaction, error) {
	metrics.QueriesTotal.WithLabelValues("season_transactions").Inc()
	return s.transactions.BySeason(ctx, seasonYear)
}

func pointsOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

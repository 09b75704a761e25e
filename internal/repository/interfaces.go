package repository

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
)

// PageRequest is a stateless pagination request. Cursor is the opaque token
// returned by the previous page ("" for the first page); it is never
// inspected or compared by callers.
type PageRequest struct {
	Cursor string
	Limit  int
}

type PlayerPage struct {
	Players    []*domain.Player `json:"players"`
	NextCursor string           `json:"next_cursor"`
}

type TeamHistoryPage struct {
	Teams      []*domain.TeamHistory `json:"teams"`
	NextCursor string                `json:"next_cursor"`
}

type LeagueRepository interface {
	InsertIfAbsent(ctx context.Context, leagues []*domain.League) (int64, error)
}

type SeasonRepository interface {
	InsertIfAbsent(ctx context.Context, seasons []*domain.Season) (int64, error)
	List(ctx context.Context) ([]*domain.Season, error)
	ListByLeague(ctx context.Context, leagueID int) ([]*domain.Season, error)
	GetByLeagueYear(ctx context.Context, leagueID, seasonYear int) (*domain.Season, error)
}

type ArenaRepository interface {
	InsertIfAbsent(ctx context.Context, arenas []*domain.Arena) (int64, error)
}

type PlayerRepository interface {
	InsertIfAbsent(ctx context.Context, players []*domain.Player) (int64, error)
	List(ctx context.Context, page PageRequest) (*PlayerPage, error)
}

type CoachRepository interface {
	InsertIfAbsent(ctx context.Context, coaches []*domain.Coach) (int64, error)
}

type RefereeRepository interface {
	InsertIfAbsent(ctx context.Context, referees []*domain.Referee) (int64, error)
}

type TeamRepository interface {
	InsertIfAbsent(ctx context.Context, teams []*domain.Team) (int64, error)
}

type TeamHistoryRepository interface {
	InsertIfAbsent(ctx context.Context, rows []*domain.TeamHistory) (int64, error)
	ListByAbbreviation(ctx context.Context, abbrev string) ([]domain.TeamHistory, error)
	List(ctx context.Context, activeOnly bool, page PageRequest) (*TeamHistoryPage, error)
}

type GameRepository interface {
	InsertIfAbsent(ctx context.Context, games []*domain.Game) (int64, error)
}

type PlayerBoxscoreRepository interface {
	InsertIfAbsent(ctx context.Context, rows []*domain.PlayerBoxscore) (int64, error)
}

type TeamBoxscoreRepository interface {
	InsertIfAbsent(ctx context.Context, rows []*domain.TeamBoxscore) (int64, error)
}

type PlayerStatsRepository interface {
	InsertTotalsIfAbsent(ctx context.Context, rows []*domain.PlayerSeasonTotal) (int64, error)
	InsertAdvancedIfAbsent(ctx context.Context, rows []*domain.PlayerSeasonAdvanced) (int64, error)
	TotalsBySeason(ctx context.Context, seasonYear int) ([]domain.PlayerSeasonTotal, error)
	TotalsByPlayer(ctx context.Context, brefID string) ([]domain.PlayerSeasonTotal, error)
	AdvancedByPlayer(ctx context.Context, brefID string) ([]domain.PlayerSeasonAdvanced, error)
	AllTotals(ctx context.Context) ([]domain.PlayerSeasonTotal, error)
}

type TeamStatsRepository interface {
	InsertTotalsIfAbsent(ctx context.Context, rows []*domain.TeamSeasonTotal) (int64, error)
	InsertAdvancedIfAbsent(ctx context.Context, rows []*domain.TeamSeasonAdvanced) (int64, error)
	TotalsByTeam(ctx context.Context, abbrev string) ([]domain.TeamSeasonTotal, error)
	TotalsBySeason(ctx context.Context, seasonYear int) ([]domain.TeamSeasonTotal, error)
	AdvancedByTeam(ctx context.Context, abbrev string) ([]domain.TeamSeasonAdvanced, error)
	AdvancedBySeason(ctx context.Context, seasonYear int) ([]domain.TeamSeasonAdvanced, error)
}

type StandingRepository interface {
	InsertIfAbsent(ctx context.Context, rows []*domain.Standing) (int64, error)
	ByTeam(ctx context.Context, abbrev string) ([]domain.Standing, error)
	BySeason(ctx context.Context, seasonYear int) ([]domain.Standing, error)
}

type DraftRepository interface {
	InsertIfAbsent(ctx context.Context, picks []*domain.DraftPick) (int64, error)
	BySeason(ctx context.Context, seasonYear int) ([]domain.DraftPick, error)
}

type AwardRepository interface {
	InsertIfAbsent(ctx context.Context, awards []*domain.Award) (int64, error)
	BySeason(ctx context.Context, seasonYear int) ([]domain.Award, error)
}

type TransactionRepository interface {
	InsertIfAbsent(ctx context.Context, transactions []*domain.Transaction) (int64, error)
	BySeason(ctx context.Context, seasonYear int) ([]domain.Transaction, error)
}

type Repositories struct {
	League         LeagueRepository
	Season         SeasonRepository
	Arena          ArenaRepository
	Player         PlayerRepository
	Coach          CoachRepository
	Referee        RefereeRepository
	Team           TeamRepository
	TeamHistory    TeamHistoryRepository
	Game           GameRepository
	PlayerBoxscore PlayerBoxscoreRepository
	TeamBoxscore   TeamBoxscoreRepository
	PlayerStats    PlayerStatsRepository
	TeamStats      TeamStatsRepository
	Standing       StandingRepository
	Draft          DraftRepository
	Award          AwardRepository
	Transaction    TransactionRepository
}

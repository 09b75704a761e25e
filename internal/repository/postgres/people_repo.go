package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) InsertIfAbsent(ctx context.Context, players []*domain.Player) (int64, error) {
	if len(players) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(players)
	return res.RowsAffected, res.Error
}

type playerCursor struct {
	LastName  string `json:"ln"`
	FirstName string `json:"fn"`
	PlayerID  int64  `json:"id"`
}

// List pages players by (last_name, first_name, player_id). NULL names sort
// as empty strings so the keyset stays total-ordered.
func (r *playerRepository) List(ctx context.Context, page repository.PageRequest) (*repository.PlayerPage, error) {
	limit := clampLimit(page.Limit, defaultPageSize)

	q := r.db.WithContext(ctx).
		Order("COALESCE(last_name, ''), COALESCE(first_name, ''), player_id").
		Limit(limit + 1)

	if page.Cursor != "" {
		var cur playerCursor
		if err := decodeCursor(page.Cursor, &cur); err != nil {
			return nil, err
		}
		q = q.Where(
			"(COALESCE(last_name, ''), COALESCE(first_name, ''), player_id) > (?, ?, ?)",
			cur.LastName, cur.FirstName, cur.PlayerID,
		)
	}

	var players []*domain.Player
	if err := q.Find(&players).Error; err != nil {
		return nil, err
	}

	next := ""
	if len(players) > limit {
		players = players[:limit]
		last := players[limit-1]
		next = encodeCursor(playerCursor{
			LastName:  strOrEmpty(last.LastName),
			FirstName: strOrEmpty(last.FirstName),
			PlayerID:  last.PlayerID,
		})
	}

	return &repository.PlayerPage{Players: players, NextCursor: next}, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type coachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *coachRepository {
	return &coachRepository{db: db}
}

func (r *coachRepository) InsertIfAbsent(ctx context.Context, coaches []*domain.Coach) (int64, error) {
	if len(coaches) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(coaches)
	return res.RowsAffected, res.Error
}

type refereeRepository struct {
	db *gorm.DB
}

func NewRefereeRepository(db *gorm.DB) *refereeRepository {
	return &refereeRepository{db: db}
}

func (r *refereeRepository) InsertIfAbsent(ctx context.Context, referees []*domain.Referee) (int64, error) {
	if len(referees) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(referees)
	return res.RowsAffected, res.Error
}

package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *gameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) InsertIfAbsent(ctx context.Context, games []*domain.Game) (int64, error) {
	if len(games) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(games)
	return res.RowsAffected, res.Error
}

type playerBoxscoreRepository struct {
	db *gorm.DB
}

func NewPlayerBoxscoreRepository(db *gorm.DB) *playerBoxscoreRepository {
	return &playerBoxscoreRepository{db: db}
}

func (r *playerBoxscoreRepository) InsertIfAbsent(ctx context.Context, rows []*domain.PlayerBoxscore) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

type teamBoxscoreRepository struct {
	db *gorm.DB
}

func NewTeamBoxscoreRepository(db *gorm.DB) *teamBoxscoreRepository {
	return &teamBoxscoreRepository{db: db}
}

func (r *teamBoxscoreRepository) InsertIfAbsent(ctx context.Context, rows []*domain.TeamBoxscore) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

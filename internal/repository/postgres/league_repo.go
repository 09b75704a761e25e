package postgres

import (
	"context"
	"errors"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type leagueRepository struct {
	db *gorm.DB
}

func NewLeagueRepository(db *gorm.DB) *leagueRepository {
	return &leagueRepository{db: db}
}

func (r *leagueRepository) InsertIfAbsent(ctx context.Context, leagues []*domain.League) (int64, error) {
	if len(leagues) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(leagues)
	return res.RowsAffected, res.Error
}

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) *seasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) InsertIfAbsent(ctx context.Context, seasons []*domain.Season) (int64, error) {
	if len(seasons) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(seasons)
	return res.RowsAffected, res.Error
}

func (r *seasonRepository) List(ctx context.Context) ([]*domain.Season, error) {
	var seasons []*domain.Season
	err := r.db.WithContext(ctx).Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *seasonRepository) ListByLeague(ctx context.Context, leagueID int) ([]*domain.Season, error) {
	var seasons []*domain.Season
	err := r.db.WithContext(ctx).Where("league_id = ?", leagueID).Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *seasonRepository) GetByLeagueYear(ctx context.Context, leagueID, seasonYear int) (*domain.Season, error) {
	var season domain.Season
	err := r.db.WithContext(ctx).
		Where("league_id = ? AND season_year = ?", leagueID, seasonYear).
		First(&season).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrSeasonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &season, nil
}

type arenaRepository struct {
	db *gorm.DB
}

func NewArenaRepository(db *gorm.DB) *arenaRepository {
	return &arenaRepository{db: db}
}

func (r *arenaRepository) InsertIfAbsent(ctx context.Context, arenas []*domain.Arena) (int64, error) {
	if len(arenas) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(arenas)
	return res.RowsAffected, res.Error
}

package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type teamStatsRepository struct {
	db *gorm.DB
}

func NewTeamStatsRepository(db *gorm.DB) *teamStatsRepository {
	return &teamStatsRepository{db: db}
}

func (r *teamStatsRepository) InsertTotalsIfAbsent(ctx context.Context, rows []*domain.TeamSeasonTotal) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

func (r *teamStatsRepository) InsertAdvancedIfAbsent(ctx context.Context, rows []*domain.TeamSeasonAdvanced) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

func (r *teamStatsRepository) TotalsByTeam(ctx context.Context, abbrev string) ([]domain.TeamSeasonTotal, error) {
	var rows []domain.TeamSeasonTotal
	err := r.db.WithContext(ctx).Where("team_abbrev = ?", abbrev).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamStatsRepository) TotalsBySeason(ctx context.Context, seasonYear int) ([]domain.TeamSeasonTotal, error) {
	var rows []domain.TeamSeasonTotal
	err := r.db.WithContext(ctx).Where("season_year = ?", seasonYear).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamStatsRepository) AdvancedByTeam(ctx context.Context, abbrev string) ([]domain.TeamSeasonAdvanced, error) {
	var rows []domain.TeamSeasonAdvanced
	err := r.db.WithContext(ctx).Where("team_abbrev = ?", abbrev).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teamStatsRepository) AdvancedBySeason(ctx context.Context, seasonYear int) ([]domain.TeamSeasonAdvanced, error) {
	var rows []domain.TeamSeasonAdvanced
	err := r.db.WithContext(ctx).Where("season_year = ?", seasonYear).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type standingRepository struct {
	db *gorm.DB
}

func NewStandingRepository(db *gorm.DB) *standingRepository {
	return &standingRepository{db: db}
}

func (r *standingRepository) InsertIfAbsent(ctx context.Context, rows []*domain.Standing) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

func (r *standingRepository) ByTeam(ctx context.Context, abbrev string) ([]domain.Standing, error) {
	var rows []domain.Standing
	err := r.db.WithContext(ctx).Where("team_abbrev = ?", abbrev).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *standingRepository) BySeason(ctx context.Context, seasonYear int) ([]domain.Standing, error) {
	var rows []domain.Standing
	err := r.db.WithContext(ctx).Where("season_year = ?", seasonYear).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerStatsRepository struct {
	db *gorm.DB
}

func NewPlayerStatsRepository(db *gorm.DB) *playerStatsRepository {
	return &playerStatsRepository{db: db}
}

func (r *playerStatsRepository) InsertTotalsIfAbsent(ctx context.Context, rows []*domain.PlayerSeasonTotal) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

func (r *playerStatsRepository) InsertAdvancedIfAbsent(ctx context.Context, rows []*domain.PlayerSeasonAdvanced) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

func (r *playerStatsRepository) TotalsBySeason(ctx context.Context, seasonYear int) ([]domain.PlayerSeasonTotal, error) {
	var rows []domain.PlayerSeasonTotal
	err := r.db.WithContext(ctx).Where("season_year = ?", seasonYear).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *playerStatsRepository) TotalsByPlayer(ctx context.Context, brefID string) ([]domain.PlayerSeasonTotal, error) {
	var rows []domain.PlayerSeasonTotal
	err := r.db.WithContext(ctx).Where("player_bref_id = ?", brefID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *playerStatsRepository) AdvancedByPlayer(ctx context.Context, brefID string) ([]domain.PlayerSeasonAdvanced, error) {
	var rows []domain.PlayerSeasonAdvanced
	err := r.db.WithContext(ctx).Where("player_bref_id = ?", brefID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AllTotals feeds the directory build. Ordered by the natural key so repeated
// builds see the same row order (and therefore the same tie order).
func (r *playerStatsRepository) AllTotals(ctx context.Context) ([]domain.PlayerSeasonTotal, error) {
	var rows []domain.PlayerSeasonTotal
	err := r.db.WithContext(ctx).
		Order("player_bref_id, season_year, team_abbrev").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

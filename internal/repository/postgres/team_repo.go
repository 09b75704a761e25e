package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) InsertIfAbsent(ctx context.Context, teams []*domain.Team) (int64, error) {
	if len(teams) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(teams)
	return res.RowsAffected, res.Error
}

type teamHistoryRepository struct {
	db *gorm.DB
}

func NewTeamHistoryRepository(db *gorm.DB) *teamHistoryRepository {
	return &teamHistoryRepository{db: db}
}

func (r *teamHistoryRepository) InsertIfAbsent(ctx context.Context, rows []*domain.TeamHistory) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows)
	return res.RowsAffected, res.Error
}

// ListByAbbreviation returns every identity era that carried the
// abbreviation, in insertion order. Resolution to a single identity happens
// in the stats core, not here.
func (r *teamHistoryRepository) ListByAbbreviation(ctx context.Context, abbrev string) ([]domain.TeamHistory, error) {
	var rows []domain.TeamHistory
	err := r.db.WithContext(ctx).
		Where("abbreviation = ?", abbrev).
		Order("team_history_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type teamHistoryCursor struct {
	TeamHistoryID int `json:"id"`
}

func (r *teamHistoryRepository) List(ctx context.Context, activeOnly bool, page repository.PageRequest) (*repository.TeamHistoryPage, error) {
	limit := clampLimit(page.Limit, 100)

	q := r.db.WithContext(ctx).
		Order("team_history_id").
		Limit(limit + 1)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if page.Cursor != "" {
		var cur teamHistoryCursor
		if err := decodeCursor(page.Cursor, &cur); err != nil {
			return nil, err
		}
		q = q.Where("team_history_id > ?", cur.TeamHistoryID)
	}

	var rows []*domain.TeamHistory
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		next = encodeCursor(teamHistoryCursor{TeamHistoryID: rows[limit-1].TeamHistoryID})
	}

	return &repository.TeamHistoryPage{Teams: rows, NextCursor: next}, nil
}

package postgres

import (
	"context"

	"github.com/dom/nba-hub/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type draftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *draftRepository {
	return &draftRepository{db: db}
}

func (r *draftRepository) InsertIfAbsent(ctx context.Context, picks []*domain.DraftPick) (int64, error) {
	if len(picks) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(picks)
	return res.RowsAffected, res.Error
}

func (r *draftRepository) BySeason(ctx context.Context, seasonYear int) ([]domain.DraftPick, error) {
	var picks []domain.DraftPick
	err := r.db.WithContext(ctx).
		Where("season_year = ?", seasonYear).
		Order("pick_overall").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

type awardRepository struct {
	db *gorm.DB
}

func NewAwardRepository(db *gorm.DB) *awardRepository {
	return &awardRepository{db: db}
}

func (r *awardRepository) InsertIfAbsent(ctx context.Context, awards []*domain.Award) (int64, error) {
	if len(awards) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(awards)
	return res.RowsAffected, res.Error
}

// BySeason orders by award type, then voting rank with unranked rows last.
func (r *awardRepository) BySeason(ctx context.Context, seasonYear int) ([]domain.Award, error) {
	var awards []domain.Award
	err := r.db.WithContext(ctx).
		Where("season_year = ?", seasonYear).
		Order("award_type, COALESCE(rank, 99), award_key").
		Find(&awards).Error
	if err != nil {
		return nil, err
	}
	return awards, nil
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) InsertIfAbsent(ctx context.Context, transactions []*domain.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(transactions)
	return res.RowsAffected, res.Error
}

func (r *transactionRepository) BySeason(ctx context.Context, seasonYear int) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := r.db.WithContext(ctx).
		Where("season_year = ?", seasonYear).
		Order("transaction_id").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

package postgres

import (
	"github.com/dom/nba-hub/internal/domain"
	"github.com/dom/nba-hub/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.League{},
		&domain.Season{},
		&domain.Arena{},
		&domain.Team{},
		&domain.TeamHistory{},
		&domain.Player{},
		&domain.Coach{},
		&domain.Referee{},
		&domain.Game{},
		&domain.PlayerBoxscore{},
		&domain.TeamBoxscore{},
		&domain.PlayerSeasonTotal{},
		&domain.PlayerSeasonAdvanced{},
		&domain.TeamSeasonTotal{},
		&domain.TeamSeasonAdvanced{},
		&domain.Standing{},
		&domain.DraftPick{},
		&domain.Award{},
		&domain.Transaction{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		League:         NewLeagueRepository(db),
		Season:         NewSeasonRepository(db),
		Arena:          NewArenaRepository(db),
		Player:         NewPlayerRepository(db),
		Coach:          NewCoachRepository(db),
		Referee:        NewRefereeRepository(db),
		Team:           NewTeamRepository(db),
		TeamHistory:    NewTeamHistoryRepository(db),
		Game:           NewGameRepository(db),
		PlayerBoxscore: NewPlayerBoxscoreRepository(db),
		TeamBoxscore:   NewTeamBoxscoreRepository(db),
		PlayerStats:    NewPlayerStatsRepository(db),
		TeamStats:      NewTeamStatsRepository(db),
		Standing:       NewStandingRepository(db),
		Draft:          NewDraftRepository(db),
		Award:          NewAwardRepository(db),
		Transaction:    NewTransactionRepository(db),
	}
}

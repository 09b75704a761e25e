package testutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/nba-hub/internal/api"
	"github.com/dom/nba-hub/internal/domain"
	pgrepo "github.com/dom/nba-hub/internal/repository/postgres"
	"github.com/dom/nba-hub/internal/service"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_nba_hub"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
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
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// NewTestServer wires the full HTTP stack against a test database. Caching is
// disabled and logs are discarded.
func NewTestServer(t *testing.T, tdb *TestDB) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	repos := pgrepo.NewRepositories(tdb.DB)
	services := service.NewServices(repos, logger, nil)

	srv := httptest.NewServer(api.NewRouter(services, logger))
	t.Cleanup(srv.Close)
	return srv
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"transactions",
		"awards",
		"draft_picks",
		"standings",
		"team_season_advanceds",
		"team_season_totals",
		"player_season_advanceds",
		"player_season_totals",
		"team_boxscores",
		"player_boxscores",
		"games",
		"referees",
		"coaches",
		"players",
		"team_histories",
		"teams",
		"arenas",
		"seasons",
		"leagues",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

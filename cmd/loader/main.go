// Command loader bulk-loads scraped JSONL exports into the store through the
// same insert-if-absent path the ingest API uses. Each collection is a
// <name>.jsonl file in the data directory, one row per line; files load in
// dependency order and missing files are skipped.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/dom/nba-hub/internal/config"
	"github.com/dom/nba-hub/internal/logging"
	"github.com/dom/nba-hub/internal/repository/postgres"
	"github.com/dom/nba-hub/internal/service"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const batchSize = 500

func main() {
	dataDir := flag.String("dir", "./data", "directory of <collection>.jsonl files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	ingest := service.NewIngestService(postgres.NewRepositories(db), logger)
	ctx := context.Background()

	// Reference collections first, stat lines last.
	loadFile(ctx, logger, *dataDir, "leagues", ingest.Leagues)
	loadFile(ctx, logger, *dataDir, "seasons", ingest.Seasons)
	loadFile(ctx, logger, *dataDir, "arenas", ingest.Arenas)
	loadFile(ctx, logger, *dataDir, "teams", ingest.Teams)
	loadFile(ctx, logger, *dataDir, "team_history", ingest.TeamHistory)
	loadFile(ctx, logger, *dataDir, "players", ingest.Players)
	loadFile(ctx, logger, *dataDir, "coaches", ingest.Coaches)
	loadFile(ctx, logger, *dataDir, "referees", ingest.Referees)
	loadFile(ctx, logger, *dataDir, "games", ingest.Games)
	loadFile(ctx, logger, *dataDir, "player_boxscores", ingest.PlayerBoxscores)
	loadFile(ctx, logger, *dataDir, "team_boxscores", ingest.TeamBoxscores)
	loadFile(ctx, logger, *dataDir, "player_season_totals", ingest.PlayerSeasonTotals)
	loadFile(ctx, logger, *dataDir, "player_season_advanced", ingest.PlayerSeasonAdvanced)
	loadFile(ctx, logger, *dataDir, "team_season_totals", ingest.TeamSeasonTotals)
	loadFile(ctx, logger, *dataDir, "team_season_advanced", ingest.TeamSeasonAdvanced)
	loadFile(ctx, logger, *dataDir, "standings", ingest.Standings)
	loadFile(ctx, logger, *dataDir, "drafts", ingest.Drafts)
	loadFile(ctx, logger, *dataDir, "awards", ingest.Awards)
	loadFile(ctx, logger, *dataDir, "transactions", ingest.Transactions)
}

type ingestFunc[T any] func(context.Context, []*T) (*service.IngestReport, error)

func loadFile[T any](ctx context.Context, logger *zap.Logger, dir, collection string, ingest ingestFunc[T]) {
	path := filepath.Join(dir, collection+".jsonl")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		logger.Debug("no export for collection", zap.String("collection", collection))
		return
	}
	if err != nil {
		logger.Fatal("failed to open export", zap.String("path", path), zap.Error(err))
	}
	defer f.Close()

	var (
		batch    []*T
		lineNo   int
		inserted int64
		skipped  int64
	)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		report, err := ingest(ctx, batch)
		if err != nil {
			logger.Fatal("failed to ingest batch",
				zap.String("collection", collection),
				zap.Int("line", lineNo),
				zap.Error(err))
		}
		inserted += report.Inserted
		skipped += report.Skipped
		batch = batch[:0]
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		row := new(T)
		if err := json.Unmarshal(line, row); err != nil {
			logger.Fatal("failed to decode row",
				zap.String("path", path),
				zap.Int("line", lineNo),
				zap.Error(err))
		}
		batch = append(batch, row)
		if len(batch) == batchSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal("failed to read export", zap.String("path", path), zap.Error(err))
	}
	flush()

	logger.Info("loaded collection",
		zap.String("collection", collection),
		zap.Int("rows", lineNo),
		zap.Int64("inserted", inserted),
		zap.Int64("skipped", skipped))
}

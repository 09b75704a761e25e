package service

import (
	"github.com/dom/nba-hub/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Leader *LeaderService
	Player *PlayerService
	Team   *TeamService
	Season *SeasonService
	Ingest *IngestService
}

func NewServices(repos *repository.Repositories, logger *zap.Logger, cache *QueryCache) *Services {
	return &Services{
		Leader: NewLeaderService(repos.PlayerStats, cache, logger),
		Player: NewPlayerService(repos.Player, repos.PlayerStats),
		Team:   NewTeamService(repos.TeamHistory, repos.TeamStats, repos.Standing, logger),
		Season: NewSeasonService(repos.Season, repos.Standing, repos.TeamStats, repos.Draft, repos.Award, repos.Transaction, cache),
		Ingest: NewIngestService(repos, logger),
	}
}

package api

import (
	"net/http"

	"github.com/dom/nba-hub/internal/api/handlers"
	"github.com/dom/nba-hub/internal/api/middleware"
	"github.com/dom/nba-hub/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	leaderHandler := handlers.NewLeaderHandler(services.Leader, logger)
	playerHandler := handlers.NewPlayerHandler(services.Player, logger)
	teamHandler := handlers.NewTeamHandler(services.Team, logger)
	seasonHandler := handlers.NewSeasonHandler(services.Season, logger)
	ingestHandler := handlers.NewIngestHandler(services.Ingest, logger)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/leaders", func(r chi.Router) {
			r.Get("/{year}", leaderHandler.GetSeasonLeaders)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Get("/directory", playerHandler.Directory)
			r.Get("/{brefID}", playerHandler.GetProfile)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Get("/{abbrev}", teamHandler.GetProfile)
		})

		r.Route("/seasons", func(r chi.Router) {
			r.Get("/", seasonHandler.List)
			r.Get("/{year}", seasonHandler.GetSummary)
			r.Get("/{year}/draft", seasonHandler.GetDraft)
			r.Get("/{year}/awards", seasonHandler.GetAwards)
			r.Get("/{year}/transactions", seasonHandler.GetTransactions)
		})

		r.Post("/ingest/{collection}", ingestHandler.Ingest)
	})

	return r
}

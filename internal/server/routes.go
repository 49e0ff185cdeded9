package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"

	"github.com/roamgames/globetrotter/internal/quiz"
)

func addRoutes(r chi.Router, logger *slog.Logger, svc *quiz.Service, db *sql.DB, rdb *redis.Client) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Globetrotter API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, rdb))

	r.Route("/api", func(r chi.Router) {
		r.Get("/destinations", handleListDestinations(logger, svc))
		r.Get("/game/random", handleRandomGame(logger, svc))
		r.Post("/game/check", handleCheckAnswer(logger, svc, broker))
		r.Get("/game/events", handleEvents(svc, broker))
		r.Post("/users", handleCreateUser(logger, svc))
		r.Get("/users", handleGetUsers(logger, svc))
	})
}

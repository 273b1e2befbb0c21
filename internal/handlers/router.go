package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_5_memory_game/internal/config"
	"go_5_memory_game/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

type RouterConfig struct {
	Game   *GameHandler
	Word   *WordHandler
	Health *HealthHandler

	AuthEnabled bool
	JWTSecret   string
	CORS        config.CORSConfig
	Logger      *slog.Logger
}

func NewRouter(c RouterConfig) http.Handler {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   c.CORS.AllowedOrigins,
		AllowedMethods:   c.CORS.AllowedMethods,
		AllowedHeaders:   c.CORS.AllowedHeaders,
		ExposedHeaders:   c.CORS.ExposedHeaders,
		AllowCredentials: c.CORS.AllowCredentials,
		MaxAge:           c.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if c.AuthEnabled {
				logger.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(c.JWTSecret))
			} else {
				logger.Warn("Authentication disabled, learner is taken from the X-Learner-ID header")
				r.Use(middleware.DevLearnerContextMiddleware)
			}

			r.Route("/games", func(r chi.Router) {
				r.Post("/", c.Game.PostGame)
				r.Get("/{game_id}", c.Game.GetGame)
				r.Put("/{game_id}/rounds/{round_index}/answer", c.Game.PutAnswer)
			})

			r.Route("/words", func(r chi.Router) {
				r.Get("/", c.Word.GetWords)
				r.Delete("/", c.Word.DeleteWords)
			})
		})
	})

	if c.Health != nil {
		r.Get("/health", c.Health.GetHealth)
	}

	return r
}

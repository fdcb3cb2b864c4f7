package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/juanmarino15/CollegeTennisAnalytics-sub000/handlers"
)

type Handlers struct {
	Tournament *handlers.TournamentHandler
	Draw       *handlers.DrawHandler
	Health     *handlers.HealthHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(h Handlers) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", h.Health.Healthz)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.ListTournaments)
		r.Get("/{tournamentID}", h.Tournament.GetTournament)
		r.Get("/{tournamentID}/draws", h.Tournament.ListTournamentDraws)
	})

	router.Route("/draws", func(r chi.Router) {
		r.Get("/{drawID}", h.Draw.GetDraw)
		r.Get("/{drawID}/bracket", h.Draw.GetDrawBracket)
	})

	router.Get("/ws/draws/{drawID}", h.WebSocket.ServeWs)

	return router
}

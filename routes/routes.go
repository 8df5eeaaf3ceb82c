package routes

import (
	"net/http"

	"github.com/Mutisya7/fixture-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	tournamentHandler *handlers.TournamentHandler,
	fixtureHandler *handlers.FixtureHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListTournamentsHandler)
		r.Post("/", tournamentHandler.CreateTournamentHandler)
		r.Get("/{tournamentID}", tournamentHandler.GetTournamentHandler)

		r.Post("/{tournamentID}/fixtures/generate", fixtureHandler.GenerateFixturesHandler)
		r.Get("/{tournamentID}/fixtures", fixtureHandler.ListFixturesHandler)
		r.Get("/{tournamentID}/conflicts", fixtureHandler.ListConflictsHandler)
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}

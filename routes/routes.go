package routes

import (
	"net/http"
	"time"

	_ "github.com/Dosada05/tennis-cup/docs"
	"github.com/Dosada05/tennis-cup/handlers"
	"github.com/Dosada05/tennis-cup/middleware"
	"github.com/Dosada05/tennis-cup/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	Metrics        http.Handler
}

func SetupRoutes(
	router *chi.Mux,
	opts Options,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		router.Handle("/metrics", opts.Metrics)
	}
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Websocket connections stay open, so they bypass the request timeout.
	router.Get("/ws/tournaments/{key}", webSocketHandler.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/auth/login", authHandler.Login)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/{key}", tournamentHandler.GetHandler)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(opts.JWTSecret))
				r.Use(middleware.Authorize(services.RoleOrganizer))

				r.Post("/", tournamentHandler.CreateHandler)
				r.Post("/{key}/players", tournamentHandler.RegisterPlayerHandler)
				r.Post("/{key}/start", tournamentHandler.StartHandler)
				r.Put("/{key}/matches/{matchID}/score", tournamentHandler.SubmitResultHandler)
				r.Delete("/{key}", tournamentHandler.ResetHandler)
			})
		})
	})
}

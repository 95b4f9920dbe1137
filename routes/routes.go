package routes

import (
	"net/http"
	"time"

	_ "github.com/Dosada05/league-manager/docs"
	"github.com/Dosada05/league-manager/handlers"
	"github.com/Dosada05/league-manager/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const requestTimeout = 30 * time.Second

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	leagueHandler *handlers.LeagueHandler,
	championshipHandler *handlers.ChampionshipHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Справочник лиг публичный
	router.Route("/leagues", func(r chi.Router) {
		r.Get("/", leagueHandler.ListLeagues)
		r.Get("/{leagueID}/teams", leagueHandler.ListTeams)
	})

	authenticate := middleware.Authenticate(opts.JWTSecret)

	// websocket без таймаута: соединение живёт долго
	router.With(authenticate).Get("/ws/championships/{championshipID}", webSocketHandler.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(chiMiddleware.Timeout(requestTimeout))

		r.Route("/championships", func(r chi.Router) {
			r.Post("/", championshipHandler.StartSeason)
			r.Route("/{championshipID}", func(r chi.Router) {
				r.Get("/", championshipHandler.GetOverview)
				r.Delete("/", championshipHandler.ResetSeason)
				r.Get("/fixtures", championshipHandler.ListFixtures)
				r.Get("/fixtures/next", championshipHandler.NextFixture)
				r.Get("/standings", championshipHandler.GetStandings)
				r.Get("/form", championshipHandler.GetForm)
				r.Get("/budget", championshipHandler.GetBudget)
				r.Post("/archive", championshipHandler.Archive)
			})
		})

		r.Post("/fixtures/{fixtureID}/result", championshipHandler.ResolveFixture)
	})
}

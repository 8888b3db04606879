package app

import (
	"net/http"

	"github.com/Black-And-White-Club/golf-league/app/shared/httpapi"
	"github.com/Black-And-White-Club/golf-league/app/shared/observability"
	"github.com/Black-And-White-Club/golf-league/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router returns the HTTP handler serving the league API.
func (app *App) Router() http.Handler {
	return newRouter(app.Config.HTTP, app.Observability,
		app.RoundModule.Routes,
		app.LeaderboardModule.Routes,
	)
}

func newRouter(cfg config.HTTPConfig, obs observability.Observability, mounts ...func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	throttle := httpapi.NewThrottle(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Route("/api", func(r chi.Router) {
		r.Use(throttle.Middleware)
		for _, mount := range mounts {
			mount(r)
		}
	})

	return r
}

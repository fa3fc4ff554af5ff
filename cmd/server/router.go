package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/task-api/internal/api"
	apiMiddleware "github.com/phrazzld/task-api/internal/api/middleware"
)

// setupRouter creates the chi router with the middleware chain and every REST
// route registered.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	statsHandler := api.NewCacheStatsHandler(app.cache)

	r.Route("/api", func(r chi.Router) {
		r.Route("/tasks", taskHandler.Routes)
		r.Get("/cache/stats", statsHandler.GetStats)
	})

	r.Method(http.MethodGet, "/health", api.NewHealthHandler(map[string]api.HealthCheck{
		"database": app.infra.db.PingContext,
		"cache":    app.cache.Ping,
	}, 0))

	return r
}

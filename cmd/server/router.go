package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/scry-studycards/internal/api"
	apiMiddleware "github.com/phrazzld/scry-studycards/internal/api/middleware"
	"github.com/phrazzld/scry-studycards/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	if timeout := app.config.Server.RequestTimeout; timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))

	systemHandler := api.NewSystemHandler(app.deps.Policy)
	studyCardHandler := api.NewStudyCardHandler(
		app.deps.Service,
		app.config.Server.MaxUploadBytes,
		app.config.Server.MaxConcurrent,
		app.logger,
	)

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if app.deps.Tokens != nil {
				r.Use(apiMiddleware.NewAuthMiddleware(app.deps.Tokens).Authenticate)
			}
			r.Post("/studycards", studyCardHandler.GenerateStudyCards)
			r.Get("/models", systemHandler.Models)
		})
	})

	r.Get("/health", systemHandler.Health)

	return r
}

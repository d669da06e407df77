package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"htnscope/app"
	"htnscope/internal"
)

// App is the HTTP surface consumed by the presentation layer. It serves
// data endpoints plus one pre-rendered story fragment; charts, layout and
// styling live entirely on the consumer side.
type App struct {
	router *chi.Mux
	svc    *app.DashboardService
	log    *internal.Logger
	// Raw-cohort responses are capped to keep payloads bounded.
	cohortCap int
}

// Config holds UI application configuration
type Config struct {
	Port      string
	CohortCap int
}

// NewApp creates the HTTP application around a dashboard service.
func NewApp(svc *app.DashboardService, cfg Config) *App {
	rowCap := cfg.CohortCap
	if rowCap <= 0 {
		rowCap = 1000
	}
	a := &App{
		router:    chi.NewRouter(),
		svc:       svc,
		log:       internal.DefaultLogger,
		cohortCap: rowCap,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/api/health", a.handleHealth)
	a.router.Get("/api/options", a.handleOptions)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/breakdowns", a.handleBreakdowns)
	a.router.Get("/api/correlations", a.handleCorrelations)
	a.router.Get("/api/correlations/scatter", a.handleScatter)
	a.router.Get("/api/cohort", a.handleCohort)
	a.router.Get("/api/snapshot", a.handleSnapshot)

	// HTMX-style fragment for the dashboard story box
	a.router.Get("/fragments/story", a.handleStoryFragment)
}

// Router exposes the configured handler for serving and tests.
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the configured port.
func (a *App) Serve(port string) error {
	addr := ":" + port
	a.log.Info("dashboard API listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nikrus/rpsduel-go/internal/api/handler"
	"github.com/nikrus/rpsduel-go/internal/api/middleware"
	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/notify"
	"github.com/nikrus/rpsduel-go/internal/services/manual"
	"github.com/nikrus/rpsduel-go/internal/services/match"
	"github.com/nikrus/rpsduel-go/internal/services/mode"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
	"github.com/nikrus/rpsduel-go/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	Clock           clock.Clock
	Notifier        notify.Notifier
	RosterService   *roster.Service
	ModeController  *mode.Controller
	MatchController *match.Controller
	ManualSession   *manual.Session
	StatsService    *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	gameHandler := handler.NewGameHandler(cfg.ModeController, cfg.MatchController, cfg.Notifier, cfg.Clock, cfg.Logger)
	manualHandler := handler.NewManualHandler(cfg.ManualSession, cfg.Notifier, cfg.Clock, cfg.Logger)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)

	// Mode negotiation
	api.HandleFunc("/votes", gameHandler.Vote).Methods(http.MethodPost)

	// Automatic mode: move collection and settlement
	api.HandleFunc("/games/{id}/choices", gameHandler.Choice).Methods(http.MethodPost)
	api.HandleFunc("/settle", gameHandler.Settle).Methods(http.MethodPost)

	// Manual mode: alternating-turn round driver
	manualRoutes := api.PathPrefix("/manual").Subrouter()
	manualRoutes.HandleFunc("/start", manualHandler.Start).Methods(http.MethodPost)
	manualRoutes.HandleFunc("/side-a", manualHandler.SideA).Methods(http.MethodPost)
	manualRoutes.HandleFunc("/side-b", manualHandler.SideB).Methods(http.MethodPost)

	// Stats
	api.HandleFunc("/stats", statsHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

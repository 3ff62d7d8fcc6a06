package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/notify"
	"github.com/nikrus/rpsduel-go/internal/services/manual"
	"github.com/nikrus/rpsduel-go/internal/services/match"
	"github.com/nikrus/rpsduel-go/internal/services/mode"
	"github.com/nikrus/rpsduel-go/internal/services/roster"
	"github.com/nikrus/rpsduel-go/internal/services/stats"
	"github.com/nikrus/rpsduel-go/internal/storage"
	"github.com/nikrus/rpsduel-go/internal/storage/memory"
	redisstorage "github.com/nikrus/rpsduel-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock    clock.Clock
	Notifier notify.Notifier

	// Services
	RosterService   *roster.Service
	ModeController  *mode.Controller
	MatchController *match.Controller
	ManualSession   *manual.Session
	StatsService    *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Notifier delivers result messages (optional)
	// If nil, notifications are written to the logger
	Notifier notify.Notifier
	// DuoNames are the display names of the two players in a manual round
	// If both empty, defaults to manual.DefaultDuoNames()
	DuoNames [2]string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	duoNames := cfg.DuoNames
	if duoNames[0] == "" && duoNames[1] == "" {
		duoNames = manual.DefaultDuoNames()
	}

	clk := clock.New()

	return newWithDependencies(store, clk, notifier, duoNames, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, notifier notify.Notifier, duoNames [2]string, logger *slog.Logger) *App {
	// Create services
	rosterService := roster.New(store, clk, logger)
	modeController := mode.NewController(store, clk, logger)
	matchController := match.NewController(store, rosterService, clk, logger)
	manualSession := manual.NewSession(store, rosterService, clk, duoNames, logger)
	statsService := stats.New(store)

	return &App{
		Storage:         store,
		Clock:           clk,
		Notifier:        notifier,
		RosterService:   rosterService,
		ModeController:  modeController,
		MatchController: matchController,
		ManualSession:   manualSession,
		StatsService:    statsService,
	}
}

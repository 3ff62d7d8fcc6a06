package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikrus/rpsduel-go/internal/api"
	"github.com/nikrus/rpsduel-go/internal/config"
	"github.com/nikrus/rpsduel-go/internal/factory"
	"github.com/nikrus/rpsduel-go/internal/notify"
	redisstorage "github.com/nikrus/rpsduel-go/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		DuoNames:    [2]string{cfg.PlayerAName, cfg.PlayerBName},
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	if cfg.NotifierType == config.NotifierTelegram {
		factoryCfg.Notifier = notify.NewTelegramNotifier(cfg.TelegramBotToken)
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		Clock:           app.Clock,
		Notifier:        app.Notifier,
		RosterService:   app.RosterService,
		ModeController:  app.ModeController,
		MatchController: app.MatchController,
		ManualSession:   app.ManualSession,
		StatsService:    app.StatsService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-social/cmd"
	"movie-social/internal/adaptor"
	"movie-social/internal/data/repository"
	"movie-social/internal/wire"
	"movie-social/pkg/database"
	"movie-social/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	if config.JWT.Secret == "" {
		logger.Warn("JWT secret is empty, logins will fail until JWT_SECRET is set")
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Database connected successfully")

	docs, err := database.InitMongo(config.Mongo)
	if err != nil {
		logger.Fatal("Failed to connect to mongo", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := docs.Close(ctx); err != nil {
			logger.Warn("Failed to disconnect mongo", zap.Error(err))
		}
	}()
	logger.Info("Mongo connected successfully", zap.String("database", config.Mongo.Database))

	kv, err := database.InitBadger(config.Session.Path)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err))
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Warn("Failed to close session store", zap.Error(err))
		}
	}()

	repos := repository.NewRepository(db, docs.Database, kv, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := wire.Wiring(repos, config, logger, wire.Options{
		Health: map[string]adaptor.Pinger{
			"postgres": db,
			"mongo":    docs,
		},
		Registry: registry,
	})
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, repos.Session, config.Session.CleanupInterval(), logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"mentalbank/config"
	_ "mentalbank/docs" // Swagger docs
	"mentalbank/internal/httpserver"
	"mentalbank/internal/storage"
	syncPkg "mentalbank/internal/sync"
	"mentalbank/pkg/log"
	"mentalbank/pkg/queue"
	"mentalbank/pkg/scope"
)

// @title       Mental Bank API
// @description Personal productivity backend: tasks, categories, goals with milestones, balance tracking, reports, data transfer and calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments use the environment directly
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mental Bank API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := storage.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(cfg.SQLite.Path); err != nil {
		logger.Fatalf(ctx, "Failed to run migrations: %v", err)
	}
	logger.Infof(ctx, "Database ready at %s", cfg.SQLite.Path)

	// 4. Queue (optional): goal mutations publish calendar-sync events
	var publisher syncPkg.Publisher
	if cfg.RabbitMQ.URL != "" {
		queueClient, qErr := queue.NewClient(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue, logger)
		if qErr != nil {
			logger.Warnf(ctx, "Queue unavailable, calendar sync disabled: %v", qErr)
		} else {
			defer queueClient.Close()
			publisher = syncPkg.NewQueuePublisher(queueClient)
			logger.Infof(ctx, "Queue connected: exchange=%s queue=%s", cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue)
		}
	} else {
		logger.Info(ctx, "RabbitMQ not configured, calendar sync disabled")
	}

	// 5. Auth
	jwtManager := scope.NewManager(cfg.Auth.Secret)

	// 6. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		JWTManager:  jwtManager,
		Publisher:   publisher,
		AppConfig:   cfg,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server stopped: %v", err)
	}
	logger.Info(ctx, "Goodbye")
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"mentalbank/config"
	goalSqlite "mentalbank/internal/goal/repository/sqlite"
	"mentalbank/internal/storage"
	"mentalbank/internal/sync/worker"
	"mentalbank/pkg/gcalendar"
	"mentalbank/pkg/log"
	"mentalbank/pkg/queue"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mental Bank calendar-sync worker...")

	if cfg.RabbitMQ.URL == "" {
		logger.Fatal(ctx, "rabbitmq.url is required for the worker")
	}

	db, err := storage.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	queueClient, err := queue.NewClient(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect queue: %v", err)
	}
	defer queueClient.Close()

	// Calendar credentials are optional: without them the worker drains the
	// queue without touching the calendar.
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Calendar client unavailable: %v", err)
			calendarClient = nil
		} else {
			logger.Infof(ctx, "Calendar client ready for calendar %s", cfg.GoogleCalendar.CalendarID)
		}
	} else {
		logger.Info(ctx, "Google Calendar credentials not configured, events will be skipped")
	}

	goalRepo := goalSqlite.New(db, logger)
	w := worker.New(goalRepo, calendarClient, cfg.GoogleCalendar.CalendarID, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return queueClient.Consume(gctx, func(body []byte) (bool, error) {
			return w.Handle(gctx, body)
		})
	})

	g.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTPServer.MetricsPort),
			Handler: mux,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Infof(gctx, "Worker metrics listening on %s", server.Addr)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-gctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Errorf(context.Background(), "Worker stopped: %v", err)
	}
	logger.Info(context.Background(), "Goodbye")
}

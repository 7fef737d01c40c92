package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/sebuszqo/ExpenseTracker/internal/config"
	database "github.com/sebuszqo/ExpenseTracker/internal/db"
	"github.com/sebuszqo/ExpenseTracker/internal/events"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/application"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/ExpenseTracker/internal/finance/interfaces"
	"github.com/spf13/cobra"
	"log/slog"
	"net/http"
	"time"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(cfg.Database.URL); err != nil {
			return fmt.Errorf("could not migrate database: %w", err)
		}
	}

	dbService, err := database.NewDBService(ctx, database.PoolConfig{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	defer dbService.Close()

	var publisher application.EventPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			slog.Warn("Event publishing disabled", "error", err)
		} else {
			defer amqpPublisher.Close()
			publisher = amqpPublisher
		}
	}

	personRepo := infrastructure.NewPersonRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	personService := application.NewPersonService(personRepo, publisher)
	categoryService := application.NewCategoryService(categoryRepo, publisher)
	transactionService := application.NewTransactionService(transactionRepo, personRepo, categoryRepo, publisher)
	reportService := application.NewReportService(personRepo, categoryRepo)

	server := NewServer(
		dbService,
		cfg.CORS.AllowedOrigins,
		interfaces.NewPersonHandler(personService, interfaces.RespondJSON, interfaces.RespondError),
		interfaces.NewCategoryHandler(categoryService, interfaces.RespondJSON, interfaces.RespondError),
		interfaces.NewTransactionHandler(transactionService, interfaces.RespondJSON, interfaces.RespondError),
		interfaces.NewReportHandler(reportService, interfaces.RespondJSON, interfaces.RespondError),
	)
	server.RegisterRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Handler(slog.Default()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

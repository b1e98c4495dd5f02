package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordregistry/internal/config"
	"wordregistry/internal/handler"
	"wordregistry/internal/middleware"
	"wordregistry/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting word registry",
		zap.String("store", cfg.Store),
		zap.String("addr", cfg.Addr()),
	)

	repo, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to store", zap.Error(err))
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
	}()

	wordService := service.NewWordService(repo, service.WithUniqueOnUpdate(cfg.EnforceUniqueOnUpdate))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newHTTPHandler(cfg, wordService, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// newHTTPHandler wires routes behind recovery, access logging and CORS
func newHTTPHandler(cfg *config.Config, wordService *service.WordService, logger *zap.Logger) http.Handler {
	h := handler.NewHandler(wordService, logger)

	return middleware.Chain(h.Routes(),
		middleware.Recover(logger),
		middleware.Logging(logger),
		middleware.CORS(middleware.DefaultCORSOptions(cfg.AllowedOrigins), logger),
	)
}

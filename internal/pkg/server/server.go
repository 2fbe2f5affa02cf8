package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// DefaultShutdownTimeout bounds how long in-flight requests may take to finish
const DefaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server listening on host:port
func NewGracefulServer(e *echo.Echo, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	e.HideBanner = true
	e.HidePort = true

	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("HTTP server failed", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse order of registration
type ShutdownManager struct {
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a named cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions and joins their errors
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	var errs []error
	for i := len(sm.functions) - 1; i >= 0; i-- {
		if err := sm.functions[i](ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", sm.names[i]),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", sm.names[i], err))
		}
	}

	logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}

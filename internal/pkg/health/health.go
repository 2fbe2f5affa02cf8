package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	Environment string    `json:"environment,omitempty"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Pinger is any dependency that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

// Ping calls f
func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Service runs the registered dependency checks
type Service struct {
	serviceName string
	info        BuildInfo
	checkers    map[string]Pinger
}

// Response is the body of /health and a failing /ready
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewService creates a health service reporting the application's name,
// version and environment
func NewService(app models.AppConfig) *Service {
	return &Service{
		serviceName: app.Name,
		info:        buildInfo(app),
		checkers:    make(map[string]Pinger),
	}
}

// AddChecker registers a dependency. Nil checkers are ignored.
func (s *Service) AddChecker(name string, checker Pinger) {
	if checker == nil {
		return
	}
	s.checkers[name] = checker
}

// Check pings every registered dependency
func (s *Service) Check(ctx context.Context) Response {
	response := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Service:      s.serviceName,
		Version:      s.info.Version,
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].Ping(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}

// RegisterEndpoints registers /ping, /health, /health/live and /ready
func RegisterEndpoints(e *echo.Echo, s *Service) {
	e.GET("/ping", NewPingHandler(s.info))

	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		response := s.Check(ctx)
		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": s.serviceName,
		})
	})

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := s.Check(ctx)
		if response.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": s.serviceName,
		})
	})
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(info BuildInfo) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	info.Hostname = hostname

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// buildInfo reads GIT_COMMIT and BUILD_TIME from the environment
func buildInfo(app models.AppConfig) BuildInfo {
	info := DefaultBuildInfo
	info.ServiceName = app.Name
	info.Environment = app.Environment

	if app.Version != "" {
		info.Version = app.Version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		info.BuildTime = buildTime
	}
	return info
}

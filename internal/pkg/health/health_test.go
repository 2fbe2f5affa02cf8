package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApp = models.AppConfig{Name: "payment-api", Environment: "test", Version: "0.1.0"}

func healthy() Pinger {
	return PingerFunc(func(ctx context.Context) error { return nil })
}

func failing(msg string) Pinger {
	return PingerFunc(func(ctx context.Context) error { return errors.New(msg) })
}

func serve(t *testing.T, s *Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterEndpoints(e, s)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCheck_AllHealthy(t *testing.T) {
	s := NewService(testApp)
	s.AddChecker("database", healthy())
	s.AddChecker("redis", healthy())

	response := s.Check(context.Background())

	assert.Equal(t, StatusHealthy, response.Status)
	assert.Equal(t, "payment-api", response.Service)
	assert.Equal(t, "0.1.0", response.Version)
	assert.Len(t, response.Dependencies, 2)
}

func TestCheck_OneUnhealthy(t *testing.T) {
	s := NewService(testApp)
	s.AddChecker("database", healthy())
	s.AddChecker("redis", failing("connection refused"))

	response := s.Check(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, DependencyInfo{Status: StatusHealthy}, response.Dependencies["database"])
	assert.Equal(t, DependencyInfo{Status: StatusUnhealthy, Error: "connection refused"}, response.Dependencies["redis"])
}

func TestAddChecker_IgnoresNil(t *testing.T) {
	s := NewService(testApp)
	s.AddChecker("nsq", nil)

	assert.Empty(t, s.Check(context.Background()).Dependencies)
}

func TestPingEndpoint(t *testing.T) {
	rec := serve(t, NewService(testApp), "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "payment-api", info.ServiceName)
	assert.Equal(t, "0.1.0", info.Version)
	assert.Equal(t, "test", info.Environment)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := NewService(testApp)
		s.AddChecker("database", healthy())

		rec := serve(t, s, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		var response Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, StatusHealthy, response.Status)
	})

	t.Run("unhealthy", func(t *testing.T) {
		s := NewService(testApp)
		s.AddChecker("database", failing("database is locked"))

		rec := serve(t, s, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "database is locked")
	})
}

func TestReadyEndpoint(t *testing.T) {
	s := NewService(testApp)
	s.AddChecker("database", healthy())

	rec := serve(t, s, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready","service":"payment-api"}`, rec.Body.String())

	s.AddChecker("redis", failing("timeout"))
	rec = serve(t, s, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveEndpoint(t *testing.T) {
	rec := serve(t, NewService(testApp), "/health/live")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"alive","service":"payment-api"}`, rec.Body.String())
}

func TestBuildInfo_DefaultsWithoutVersion(t *testing.T) {
	info := buildInfo(models.AppConfig{Name: "payment-api"})

	assert.Equal(t, DefaultBuildInfo.Version, info.Version)
	assert.Equal(t, "payment-api", info.ServiceName)
	assert.Empty(t, info.Environment)
}

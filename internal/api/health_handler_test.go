package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"streamhub/internal/api"
	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/pkg/logger"
)

type healthResponse struct {
	Status   string                            `json:"status"`
	Services map[string]map[string]interface{} `json:"services"`
	Version  string                            `json:"version"`
}

func TestHealthCheckDegradedWithoutRedis(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	handler := api.NewHealthHandler(db, nil, "0.1.0", log)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// A reachable database with no redis is degraded, not down.
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "0.1.0", resp.Version)
	require.Equal(t, "healthy", resp.Services["database"]["status"])
	require.Equal(t, "unhealthy", resp.Services["redis"]["status"])
}

func TestHealthCheckAllServicesDown(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)

	handler := api.NewHealthHandler(nil, nil, "0.1.0", log)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	http.HandlerFunc(handler.HealthCheck).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "degraded", resp.Status)
	require.Equal(t, "unhealthy", resp.Services["database"]["status"])
	require.Equal(t, "unhealthy", resp.Services["redis"]["status"])
}

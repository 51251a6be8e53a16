package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"streamhub/pkg/logger"
)

type HealthHandler struct {
	db          *sql.DB
	redisClient *redis.Client
	version     string
	logger      logger.Logger
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
	Version   string                 `json:"version"`
}

func NewHealthHandler(db *sql.DB, redisClient *redis.Client, version string, logger logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		version:     version,
		logger:      logger,
	}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	services := make(map[string]interface{})
	services["database"] = h.checkDatabaseHealth()
	services["redis"] = h.checkRedisHealth(r.Context())

	status := "healthy"
	for _, service := range services {
		if serviceMap, ok := service.(map[string]interface{}); ok {
			if serviceStatus, exists := serviceMap["status"]; exists {
				if serviceStatus != "healthy" {
					status = "degraded"
					break
				}
			}
		}
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
		Version:   h.version,
	}

	if status == "healthy" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(response)
}

func (h *HealthHandler) checkDatabaseHealth() map[string]interface{} {
	if h.db == nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "database connection is nil",
		}
	}

	if err := h.db.Ping(); err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	stats := h.db.Stats()
	return map[string]interface{}{
		"status":           "healthy",
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"wait_count":       stats.WaitCount,
		"wait_duration":    stats.WaitDuration.String(),
	}
}

func (h *HealthHandler) checkRedisHealth(ctx context.Context) map[string]interface{} {
	if h.redisClient == nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "redis client is nil",
		}
	}

	if _, err := h.redisClient.Ping(ctx).Result(); err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}

	poolStats := h.redisClient.PoolStats()
	return map[string]interface{}{
		"status":      "healthy",
		"hits":        poolStats.Hits,
		"misses":      poolStats.Misses,
		"timeouts":    poolStats.Timeouts,
		"total_conns": poolStats.TotalConns,
		"idle_conns":  poolStats.IdleConns,
		"stale_conns": poolStats.StaleConns,
	}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamhub_http_requests_total",
			Help: "Toplam HTTP istek sayısı",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "streamhub_http_request_duration_seconds",
			Help:    "HTTP istek süresi (saniye)",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	DatabaseOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamhub_database_operations_total",
			Help: "Toplam veritabanı operasyonu sayısı",
		},
		[]string{"operation", "entity"},
	)

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamhub_auth_attempts_total",
			Help: "Kimlik doğrulama denemesi sayısı",
		},
		[]string{"operation", "result"},
	)

	VideoViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "streamhub_video_views_total",
			Help: "Görüntülenme artırma işlemi sayısı",
		},
	)
)

func RecordHttpRequest(method, endpoint, status string, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordDatabaseOperation(operation, entity string) {
	DatabaseOperationsTotal.WithLabelValues(operation, entity).Inc()
}

func RecordAuthAttempt(operation, result string) {
	AuthAttemptsTotal.WithLabelValues(operation, result).Inc()
}

func RecordVideoView() {
	VideoViewsTotal.Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and route
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypnoraffle_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypnoraffle_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypnoraffle_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"limiter"},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hypnoraffle_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// QrRedirects counts redirect endpoint outcomes ("redirect", "not_found", "inactive", ...)
	QrRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypnoraffle_qr_redirects_total",
			Help: "Total number of QR redirect resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// QrScans counts recorded scans
	QrScans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypnoraffle_qr_scans_total",
			Help: "Total number of recorded QR scans",
		},
		[]string{"device_type"},
	)

	// RaffleWinners counts participants drawn as winners
	RaffleWinners = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hypnoraffle_raffle_winners_total",
			Help: "Total number of participants drawn as winners",
		},
	)

	// ParticipantsRegistered counts created participants by registration channel
	ParticipantsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hypnoraffle_participants_registered_total",
			Help: "Total number of registered participants",
		},
		[]string{"channel"},
	)

	// LiveSubscribers tracks open realtime subscriptions per collection
	LiveSubscribers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_live_subscribers",
			Help: "Number of open realtime subscriptions",
		},
		[]string{"collection"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_goroutine_count",
			Help: "Number of goroutines",
		},
	)

	// CacheHits counts the number of cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hypnoraffle_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// CacheMisses counts the number of cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hypnoraffle_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// SystemCPUUsage tracks CPU usage percentage
	SystemCPUUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_system_cpu_usage_percent",
			Help: "CPU usage percentage by core",
		},
		[]string{"core"},
	)

	// SystemDiskUsage tracks disk usage
	SystemDiskUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_system_disk_usage_bytes",
			Help: "Disk usage statistics in bytes",
		},
		[]string{"mountpoint", "type"}, // type is "used", "free" or "total"
	)

	// SystemLoadAverage tracks system load averages
	SystemLoadAverage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hypnoraffle_system_load_average",
			Help: "System load average",
		},
		[]string{"period"}, // "1min", "5min", "15min"
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}

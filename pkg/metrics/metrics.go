package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Business metrics
	PassengersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passengers_created_total",
			Help: "Total number of passenger records created",
		},
		[]string{"service"},
	)

	PassengersDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "passengers_deleted_total",
			Help: "Total number of passenger records deleted",
		},
		[]string{"service"},
	)

	TransfersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfers_created_total",
			Help: "Total number of transfer codes issued",
		},
		[]string{"service"},
	)

	TransfersRedeemedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfers_redeemed_total",
			Help: "Total number of transfer code redemptions",
		},
		[]string{"service", "status"},
	)

	GeocodeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Total number of geocoder lookups by outcome",
		},
		[]string{"service", "status"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	RabbitMQMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rabbitmq_messages_published_total",
			Help: "Total number of messages published to RabbitMQ",
		},
		[]string{"service", "exchange", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordGeocodeLookup records the outcome of a geocoder call
func RecordGeocodeLookup(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	GeocodeLookupsTotal.WithLabelValues(service, status).Inc()
}

// RecordPublish records the outcome of a broker publish
func RecordPublish(service, exchange string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RabbitMQMessagesPublished.WithLabelValues(service, exchange, status).Inc()
}

// Package metrics declares the process-wide Prometheus collectors. They are registered on
// the default registry and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// 模拟器 tick 次数
	SimulationTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulseboard_simulation_ticks_total",
			Help: "Number of simulation passes over the monitor set.",
		},
	)

	// 状态变化次数
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_status_transitions_total",
			Help: "Monitor status changes made by the simulation.",
		},
		[]string{"type", "to"},
	)

	// 当前各状态监控数
	MonitorsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pulseboard_monitors",
			Help: "Number of monitors per current status.",
		},
		[]string{"status"},
	)

	PublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulseboard_publish_errors_total",
			Help: "Failed transition publishes per sink.",
		},
		[]string{"sink"},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pulseboard_stream_clients",
			Help: "Connected websocket stream clients.",
		},
	)

	// HTTP请求持续时间
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

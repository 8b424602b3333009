package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the chart service

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RenderPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_render_passes_total",
			Help: "Total number of chart render passes",
		},
		[]string{"range"},
	)

	HoverHitTests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chart_hover_hit_tests_total",
			Help: "Total number of pointer hit-tests performed",
		},
	)

	SeriesBarsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chart_series_bars_loaded",
			Help: "Number of bars in the currently loaded series",
		},
	)
)

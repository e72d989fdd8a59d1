// Package metrics provides Prometheus metrics for the blog feed.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogfeed"

var (
	// FetchTotal counts article page fetches by outcome.
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Total number of article page fetches",
		},
		[]string{"source", "status"},
	)

	// FetchDuration measures article page fetch duration.
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of article page fetches in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// PreviewTotal counts preview openings by outcome.
	PreviewTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preview_total",
			Help:      "Total number of post previews opened",
		},
		[]string{"status"},
	)

	// ActiveSessions tracks feed sessions held in memory.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of feed sessions held in memory",
		},
	)

	// ThemeToggles counts theme switches by resulting theme.
	ThemeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Total number of theme toggles",
		},
		[]string{"theme"},
	)
)

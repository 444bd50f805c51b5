package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request latency by route and status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
		[]string{"method", "path", "status"},
	)

	// FeedViewsRecorded counts first-time (campaign, user) view observations.
	FeedViewsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_feed_views_recorded_total",
			Help: "Number of campaign views counted (once per campaign/user pair)",
		},
	)

	// LikeToggles counts like toggles by resulting state.
	LikeToggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_like_toggles_total",
			Help: "Number of like toggles by resulting state",
		},
		[]string{"state"}, // liked or unliked
	)

	// ApplicationsCreated counts accepted campaign applications.
	ApplicationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_applications_created_total",
			Help: "Number of campaign applications created",
		},
	)
)

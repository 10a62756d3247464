package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	ClassificationsTotal   *prometheus.CounterVec
	BoundaryRefreshSeconds prometheus.Histogram
	BoundaryVertices       *prometheus.GaugeVec
}

// NewMetrics registers the collectors on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ClassificationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "borderblur_classifications_total",
			Help: "Total number of classified points by borough and confidence tier.",
		}, []string{"borough", "confidence"}),
		BoundaryRefreshSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "borderblur_boundary_refresh_duration_seconds",
			Help:    "Duration of full boundary fetch-and-assemble refreshes.",
			Buckets: prometheus.DefBuckets,
		}),
		BoundaryVertices: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "borderblur_boundary_vertices",
			Help: "Vertex count of each loaded boundary ring by resolution.",
		}, []string{"borough", "resolution"}),
	}
}

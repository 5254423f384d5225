package metrics

import (
	"context"
	"math"

	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Projections      prometheus.Counter
	RotationPlans    prometheus.Counter
	RotationRadians  *prometheus.HistogramVec
	Selections       *prometheus.CounterVec
	SearchQueries    prometheus.Counter
	SearchResults    prometheus.Histogram
	ActiveAnimations prometheus.Gauge
	Frames           prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Projections: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "globe_projections_total",
			Help: "Total number of geographic coordinates projected onto the globe.",
		}),
		RotationPlans: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "globe_rotation_plans_total",
			Help: "Total number of shortest-path rotations planned.",
		}),
		RotationRadians: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "globe_rotation_delta_radians",
			Help:    "Absolute size of planned rotation deltas per axis.",
			Buckets: prometheus.LinearBuckets(math.Pi/8, math.Pi/8, 8),
		}, []string{"axis"}),
		Selections: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "globe_city_selections_total",
			Help: "Total number of city selections.",
		}, []string{"city"}),
		SearchQueries: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "globe_search_queries_total",
			Help: "Total number of city searches.",
		}),
		SearchResults: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "globe_search_results",
			Help:    "Number of cities returned per search.",
			Buckets: prometheus.LinearBuckets(0, 1, 9),
		}),
		ActiveAnimations: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "globe_active_animations",
			Help: "Number of globe rotations currently running.",
		}),
		Frames: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "globe_frames_total",
			Help: "Total number of frames the globe has been advanced.",
		}),
	}
}

// GeoObserver counts projections and rotation plans reported by the geo package.
type GeoObserver struct {
	metrics *Metrics
}

// NewGeoObserver returns an observer recording into m.
func NewGeoObserver(m *Metrics) *GeoObserver {
	return &GeoObserver{metrics: m}
}

func (o *GeoObserver) PointProjected(context.Context, string, models.GeoCoordinate, models.Point3D) {
	o.metrics.Projections.Inc()
}

func (o *GeoObserver) RotationPlanned(_ context.Context, _ string, _ models.Orientation, delta models.RotationDelta) {
	o.metrics.RotationPlans.Inc()
	o.metrics.RotationRadians.WithLabelValues("x").Observe(math.Abs(delta.X))
	o.metrics.RotationRadians.WithLabelValues("y").Observe(math.Abs(delta.Y))
}

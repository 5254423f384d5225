package metrics_test

import (
	"strings"
	"testing"

	"github.com/UnknownOlympus/globe/internal/geo"
	"github.com/UnknownOlympus/globe/internal/metrics"
	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.Selections.WithLabelValues("Paris").Inc()
	m.RotationRadians.WithLabelValues("x").Observe(0.1)

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	// Vectors only export the label values observed so far.
	assert.Equal(t, 8, count)

	assert.Panics(t, func() { metrics.NewMetrics(reg) }, "duplicate registration must fail")
}

func TestGeoObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	obs := metrics.NewGeoObserver(m)
	ctx := t.Context()

	projector := geo.NewProjector(geo.DefaultRadius, obs)
	planner := geo.NewPlanner(obs)

	projector.Project(ctx, "Paris", models.GeoCoordinate{Latitude: 48.8566, Longitude: 2.3522})
	projector.Project(ctx, "Tokyo", models.GeoCoordinate{Latitude: 35.6762, Longitude: 139.6503})
	planner.Plan(ctx, "Tokyo", 0.5, -2.5, models.Orientation{})

	assert.InDelta(t, 2, testutil.ToFloat64(m.Projections), 1e-12)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RotationPlans), 1e-12)

	expected := `
		# HELP globe_rotation_plans_total Total number of shortest-path rotations planned.
		# TYPE globe_rotation_plans_total counter
		globe_rotation_plans_total 1
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "globe_rotation_plans_total"))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RotationRadians))
}

package geo_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/UnknownOlympus/globe/internal/geo"
	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAngle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "zero", input: 0, want: 0},
		{name: "inside range", input: 1.5, want: 1.5},
		{name: "just above pi", input: math.Pi + 0.25, want: -math.Pi + 0.25},
		{name: "just below minus pi", input: -math.Pi - 0.25, want: math.Pi - 0.25},
		{name: "full turn", input: 2 * math.Pi, want: 0},
		{name: "several turns", input: 6*math.Pi + 0.5, want: 0.5},
		{name: "several negative turns", input: -8*math.Pi - 0.5, want: -0.5},
		{name: "pi keeps its sign", input: math.Pi, want: math.Pi},
		{name: "minus pi keeps its sign", input: -math.Pi, want: -math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, geo.NormalizeAngle(tt.input), 1e-9)
		})
	}
}

func TestNormalizeAngle_NonFinite(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsNaN(geo.NormalizeAngle(math.NaN())))
	assert.True(t, math.IsNaN(geo.NormalizeAngle(math.Inf(1))))
	assert.True(t, math.IsNaN(geo.NormalizeAngle(math.Inf(-1))))
}

func TestPlanRotation_AlwaysInRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	for range 10_000 {
		target := models.GeoCoordinate{
			Latitude:  (rng.Float64()*2 - 1) * math.Pi / 2,
			Longitude: (rng.Float64()*2 - 1) * math.Pi,
		}
		current := models.Orientation{
			X: (rng.Float64()*2 - 1) * 20 * math.Pi,
			Y: (rng.Float64()*2 - 1) * 20 * math.Pi,
		}

		delta := geo.PlanRotation(target.Latitude, target.Longitude, current)

		require.GreaterOrEqual(t, delta.X, -math.Pi)
		require.LessOrEqual(t, delta.X, math.Pi)
		require.GreaterOrEqual(t, delta.Y, -math.Pi)
		require.LessOrEqual(t, delta.Y, math.Pi)
	}
}

func TestPlanRotation_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for range 1_000 {
		// Stay clear of the poles where longitude is degenerate.
		targetLat := (rng.Float64()*2 - 1) * 1.5
		targetLon := (rng.Float64()*2 - 1) * math.Pi
		current := models.Orientation{
			X: (rng.Float64()*2 - 1) * 10,
			Y: (rng.Float64()*2 - 1) * 10,
		}

		reached := current.Apply(geo.PlanRotation(targetLat, targetLon, current))

		assert.InDelta(t, 0, geo.NormalizeAngle(reached.X-targetLat), 1e-9)
		assert.InDelta(t, 0, geo.NormalizeAngle(-reached.Y-targetLon), 1e-9)
	}
}

func TestPlanRotation_NoWrapNeeded(t *testing.T) {
	t.Parallel()

	delta := geo.PlanRotation(math.Pi/4, math.Pi/4, models.Orientation{})

	assert.InDelta(t, math.Pi/4, delta.X, 1e-12)
	assert.InDelta(t, -math.Pi/4, delta.Y, 1e-12)
}

func TestPlanRotation_WrapsTheShortWay(t *testing.T) {
	t.Parallel()

	t.Run("same side needs no rotation", func(t *testing.T) {
		t.Parallel()
		delta := geo.PlanRotation(0, -3.0, models.Orientation{X: 0, Y: 3.0})

		assert.InDelta(t, 0, delta.X, 1e-12)
		assert.InDelta(t, 0, delta.Y, 1e-12)
	})

	t.Run("raw yaw above pi", func(t *testing.T) {
		t.Parallel()
		// Raw yaw delta is 3.0 - (-3.0) = 6.0, the short way round is 6.0 - 2π.
		delta := geo.PlanRotation(0, -3.0, models.Orientation{X: 0, Y: -3.0})

		assert.InDelta(t, 6.0-2*math.Pi, delta.Y, 1e-12)
		assert.Less(t, math.Abs(delta.Y), math.Pi)
	})

	t.Run("raw pitch below minus pi", func(t *testing.T) {
		t.Parallel()
		delta := geo.PlanRotation(-1.5, 0, models.Orientation{X: 2.5, Y: 0})

		assert.InDelta(t, -4.0+2*math.Pi, delta.X, 1e-12)
	})
}

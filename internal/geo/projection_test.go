package geo_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/globe/internal/geo"
	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestProject_NormEqualsRadius(t *testing.T) {
	t.Parallel()

	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -180.0; lon <= 180; lon += 11.25 {
			point := geo.Project(lat, lon, geo.DefaultRadius)
			require.InDelta(t, geo.DefaultRadius, point.Norm(), 1e-5, "lat=%v lon=%v", lat, lon)
		}
	}
}

func TestProject_Origin(t *testing.T) {
	t.Parallel()

	point := geo.Project(0, 0, geo.DefaultRadius)

	assert.InDelta(t, 0, point.X, tolerance)
	assert.InDelta(t, 0, point.Y, tolerance)
	assert.InDelta(t, geo.DefaultRadius, point.Z, tolerance)
}

func TestProject_NorthPoleIgnoresLongitude(t *testing.T) {
	t.Parallel()

	for _, lon := range []float64{-180, -90, 0, 45, 123.4, 180} {
		point := geo.Project(90, lon, geo.DefaultRadius)

		assert.InDelta(t, 0, point.X, tolerance, "lon=%v", lon)
		assert.InDelta(t, geo.DefaultRadius, point.Y, tolerance, "lon=%v", lon)
		assert.InDelta(t, 0, point.Z, tolerance, "lon=%v", lon)
	}
}

func TestProject_Istanbul(t *testing.T) {
	t.Parallel()

	const lat, lon, radius = 41.0082, 28.9784, 0.7
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	want := models.Point3D{
		X: radius * math.Cos(latRad) * math.Sin(lonRad),
		Y: radius * math.Sin(latRad),
		Z: radius * math.Cos(latRad) * math.Cos(lonRad),
	}

	got := geo.Project(lat, lon, radius)

	assert.Equal(t, want, got)
	assert.InDelta(t, 0.25591727, got.X, 1e-8)
	assert.InDelta(t, 0.45931692, got.Y, 1e-8)
	assert.InDelta(t, 0.46209773, got.Z, 1e-8)
}

func TestProject_EastIsPositiveX(t *testing.T) {
	t.Parallel()

	east := geo.Project(0, 90, 1)
	west := geo.Project(0, -90, 1)

	assert.InDelta(t, 1, east.X, tolerance)
	assert.InDelta(t, -1, west.X, tolerance)
}

func TestProject_OutOfRangeIsNotClamped(t *testing.T) {
	t.Parallel()

	// 100° of latitude walks past the pole onto the far side.
	point := geo.Project(100, 0, 1)

	assert.InDelta(t, math.Sin(geo.Radians(100)), point.Y, tolerance)
	assert.Less(t, point.Z, 0.0)
	assert.InDelta(t, 1, point.Norm(), tolerance)
}

func TestProject_NaNPropagates(t *testing.T) {
	t.Parallel()

	point := geo.Project(math.NaN(), 10, 1)

	assert.True(t, math.IsNaN(point.X))
	assert.True(t, math.IsNaN(point.Y))
	assert.True(t, math.IsNaN(point.Z))
}

func TestImpliedCoordinates_InvertsProject(t *testing.T) {
	t.Parallel()

	cases := []models.GeoCoordinate{
		{Latitude: 41.0082, Longitude: 28.9784},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 34.0522, Longitude: -118.2437},
		{Latitude: 51.5074, Longitude: -0.1278},
	}

	for _, c := range cases {
		lat, lon := geo.ImpliedCoordinates(geo.ProjectCoordinate(c, geo.DefaultRadius), geo.DefaultRadius)

		assert.InDelta(t, c.Latitude, geo.Degrees(lat), 1e-9)
		assert.InDelta(t, c.Longitude, geo.Degrees(lon), 1e-9)
	}
}

func TestMarkerPosition(t *testing.T) {
	t.Parallel()

	surface := geo.Project(48.8566, 2.3522, geo.DefaultRadius)

	marker := geo.MarkerPosition(surface, geo.DefaultRadius, 0.02)

	assert.InDelta(t, geo.DefaultRadius+0.02, marker.Norm(), tolerance)
	// Same direction as the surface point.
	assert.InDelta(t, surface.X/surface.Norm(), marker.X/marker.Norm(), tolerance)
	assert.InDelta(t, surface.Y/surface.Norm(), marker.Y/marker.Norm(), tolerance)
	assert.InDelta(t, surface.Z/surface.Norm(), marker.Z/marker.Norm(), tolerance)
}

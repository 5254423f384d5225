// Package geo maps geographic coordinates onto the globe and plans the
// rotations that bring a location to the front of it.
//
// Every function in this package is pure: no logging, no shared state.
// Diagnostics are reported through an Observer by the Projector and Planner
// wrappers instead.
package geo

import (
	"math"

	"github.com/UnknownOlympus/globe/internal/models"
)

// DefaultRadius is the radius of the rendered globe.
const DefaultRadius = 0.7

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Project maps a latitude/longitude pair in degrees to a point on a sphere of the given radius.
//
// Longitude 0 on the equator lands on +Z, the north pole on +Y and east longitudes on +X.
// Out of range inputs are not clamped; they still produce a point on the sphere.
func Project(lat, lon, radius float64) models.Point3D {
	latRad := Radians(lat)
	lonRad := Radians(lon)

	return models.Point3D{
		X: radius * math.Cos(latRad) * math.Sin(lonRad),
		Y: radius * math.Sin(latRad),
		Z: radius * math.Cos(latRad) * math.Cos(lonRad),
	}
}

// ProjectCoordinate is Project for a GeoCoordinate.
func ProjectCoordinate(c models.GeoCoordinate, radius float64) models.Point3D {
	return Project(c.Latitude, c.Longitude, radius)
}

// ImpliedCoordinates recovers the latitude and longitude, in radians, of a point on a sphere of the
// given radius. It is the inverse of Project away from the poles; at a pole the longitude is whatever
// atan2 yields for the residual x and z.
func ImpliedCoordinates(p models.Point3D, radius float64) (float64, float64) {
	dir := p.Scale(1 / radius)

	return math.Asin(dir.Y), math.Atan2(dir.X, dir.Z)
}

// MarkerPosition lifts a surface point outward along the sphere normal by offset.
func MarkerPosition(surface models.Point3D, radius, offset float64) models.Point3D {
	normal := surface.Scale(1 / radius)

	return surface.Add(normal.Scale(offset))
}

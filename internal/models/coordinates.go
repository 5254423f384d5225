package models

import "math"

// GeoCoordinate represents a geographical point defined by its latitude and longitude in degrees.
type GeoCoordinate struct {
	Latitude  float64 // Latitude of the geographical point, degrees in [-90, 90].
	Longitude float64 // Longitude of the geographical point, degrees in [-180, 180].
}

// Point3D is a position in the globe's local frame.
// Y points to the north pole, Z points out of the screen at lat 0, lon 0.
type Point3D struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length of the point's position vector.
func (p Point3D) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Scale multiplies every component by k.
func (p Point3D) Scale(k float64) Point3D {
	return Point3D{X: p.X * k, Y: p.Y * k, Z: p.Z * k}
}

// Add returns the component-wise sum of p and q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Orientation is the accumulated rotation of the globe, in radians.
// X is the pitch around the horizontal axis, Y the yaw around the polar axis.
type Orientation struct {
	X float64
	Y float64
}

// Apply returns the orientation reached after rotating by delta.
func (o Orientation) Apply(delta RotationDelta) Orientation {
	return Orientation{X: o.X + delta.X, Y: o.Y + delta.Y}
}

// RotationDelta is a relative rotation in radians, one component per axis.
type RotationDelta struct {
	X float64
	Y float64
}

// Degrees returns both components converted to degrees.
func (d RotationDelta) Degrees() (float64, float64) {
	return d.X * 180 / math.Pi, d.Y * 180 / math.Pi
}

package geo

import (
	"math"

	"github.com/UnknownOlympus/globe/internal/models"
)

const twoPi = 2 * math.Pi

// NormalizeAngle wraps an angle in radians into [-π, π].
//
// The result is the same as repeatedly subtracting 2π while the angle is above π and adding 2π while
// it is below -π. Exactly +π stays +π and exactly -π stays -π, so odd multiples of π keep the sign of
// the input. NaN and infinite inputs yield NaN.
func NormalizeAngle(angle float64) float64 {
	wrapped := math.Mod(angle, twoPi)
	if wrapped > math.Pi {
		wrapped -= twoPi
	} else if wrapped < -math.Pi {
		wrapped += twoPi
	}

	return wrapped
}

// PlanRotation returns the shortest rotation that brings the target, given by its latitude and
// longitude in radians, to the front of a globe currently at the given orientation.
//
// Pitch follows latitude and yaw follows negated longitude; each component of the result lies in
// [-π, π].
func PlanRotation(targetLat, targetLon float64, current models.Orientation) models.RotationDelta {
	return models.RotationDelta{
		X: NormalizeAngle(targetLat - current.X),
		Y: NormalizeAngle(-targetLon - current.Y),
	}
}

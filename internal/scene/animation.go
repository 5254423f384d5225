package scene

import (
	"time"

	"github.com/UnknownOlympus/globe/internal/models"
)

// EaseInEaseOut maps linear progress in [0, 1] onto a curve that starts and ends slowly.
// Inputs outside [0, 1] are clamped.
func EaseInEaseOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	default:
		return t * t * (3 - 2*t)
	}
}

// rotation interpolates the orientation between two values over a fixed duration.
// Once done the globe adopts settle: to with both angles wrapped into [-π, π].
type rotation struct {
	from     models.Orientation
	to       models.Orientation
	settle   models.Orientation
	duration time.Duration
	elapsed  time.Duration
}

func (r *rotation) step(dt time.Duration) {
	r.elapsed += dt
}

func (r *rotation) done() bool {
	return r.elapsed >= r.duration
}

func (r *rotation) progress() float64 {
	if r.duration <= 0 {
		return 1
	}
	return min(float64(r.elapsed)/float64(r.duration), 1)
}

func (r *rotation) sample() models.Orientation {
	k := EaseInEaseOut(r.progress())

	return models.Orientation{
		X: r.from.X + (r.to.X-r.from.X)*k,
		Y: r.from.Y + (r.to.Y-r.from.Y)*k,
	}
}

// pulseScale returns the marker scale after age of a 1.0 -> peak -> 1.0 pulse repeating every period.
func pulseScale(age, period time.Duration, peak float64) float64 {
	if period <= 0 {
		return 1
	}
	half := float64(period) / 2
	phase := float64(age % period)
	if phase < half {
		return 1 + (peak-1)*phase/half
	}
	return peak - (peak-1)*(phase-half)/half
}

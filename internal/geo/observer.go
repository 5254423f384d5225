package geo

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/globe/internal/models"
	"golang.org/x/time/rate"
)

// Observer receives the inputs and outputs of projections and rotation plans.
// Implementations must be safe for concurrent use.
type Observer interface {
	PointProjected(ctx context.Context, label string, coord models.GeoCoordinate, point models.Point3D)
	RotationPlanned(ctx context.Context, label string, current models.Orientation, delta models.RotationDelta)
}

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) PointProjected(context.Context, string, models.GeoCoordinate, models.Point3D) {}

func (NopObserver) RotationPlanned(context.Context, string, models.Orientation, models.RotationDelta) {}

// MultiObserver fans every event out to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) PointProjected(
	ctx context.Context,
	label string,
	coord models.GeoCoordinate,
	point models.Point3D,
) {
	for _, obs := range m {
		obs.PointProjected(ctx, label, coord, point)
	}
}

func (m MultiObserver) RotationPlanned(
	ctx context.Context,
	label string,
	current models.Orientation,
	delta models.RotationDelta,
) {
	for _, obs := range m {
		obs.RotationPlanned(ctx, label, current, delta)
	}
}

// LogObserver writes projections and rotation plans to a logger at debug level.
// Events beyond the limiter's budget are dropped so a busy frame loop cannot flood the log.
type LogObserver struct {
	log     *slog.Logger  // Logger for diagnostic output
	limiter *rate.Limiter // Limiter for sampled output
}

// NewLogObserver creates a LogObserver that emits at most perSecond events per second,
// with bursts of the same size. A non-positive perSecond disables sampling.
func NewLogObserver(log *slog.Logger, perSecond int) *LogObserver {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &LogObserver{log: log, limiter: rate.NewLimiter(limit, max(perSecond, 1))}
}

func (lo *LogObserver) PointProjected(
	ctx context.Context,
	label string,
	coord models.GeoCoordinate,
	point models.Point3D,
) {
	if !lo.limiter.Allow() {
		return
	}
	lo.log.DebugContext(ctx, "Projected coordinate",
		"label", label,
		"lat", coord.Latitude,
		"lon", coord.Longitude,
		"x", point.X,
		"y", point.Y,
		"z", point.Z,
	)
}

func (lo *LogObserver) RotationPlanned(
	ctx context.Context,
	label string,
	current models.Orientation,
	delta models.RotationDelta,
) {
	if !lo.limiter.Allow() {
		return
	}
	dx, dy := delta.Degrees()
	lo.log.DebugContext(ctx, "Planned rotation",
		"label", label,
		"current_x", current.X,
		"current_y", current.Y,
		"delta_x_deg", dx,
		"delta_y_deg", dy,
	)
}

// Projector projects coordinates onto a globe of fixed radius and reports each projection.
type Projector struct {
	Radius   float64
	Observer Observer
}

// NewProjector creates a Projector. A nil observer is replaced with NopObserver.
func NewProjector(radius float64, obs Observer) *Projector {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Projector{Radius: radius, Observer: obs}
}

// Project projects coord and reports the result under label.
func (p *Projector) Project(ctx context.Context, label string, coord models.GeoCoordinate) models.Point3D {
	point := ProjectCoordinate(coord, p.Radius)
	p.Observer.PointProjected(ctx, label, coord, point)

	return point
}

// Planner plans rotations and reports each plan.
type Planner struct {
	Observer Observer
}

// NewPlanner creates a Planner. A nil observer is replaced with NopObserver.
func NewPlanner(obs Observer) *Planner {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Planner{Observer: obs}
}

// Plan plans the rotation toward the target angles, in radians, and reports it under label.
func (p *Planner) Plan(
	ctx context.Context,
	label string,
	targetLat, targetLon float64,
	current models.Orientation,
) models.RotationDelta {
	delta := PlanRotation(targetLat, targetLon, current)
	p.Observer.RotationPlanned(ctx, label, current, delta)

	return delta
}

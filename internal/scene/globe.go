// Package scene holds the presentation state of the globe: its orientation,
// the rotation currently animating it and the marker of the selected city.
//
// Orientation is a plain value threaded through geo.PlanRotation on every focus;
// the globe never reads it back from a renderer.
package scene

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/UnknownOlympus/globe/internal/geo"
	"github.com/UnknownOlympus/globe/internal/models"
)

// Mode is the current behavior of the globe.
type Mode string

// Globe modes.
const (
	ModeSpinning  Mode = "spinning"  // idle spin around the polar axis
	ModeFocusing  Mode = "focusing"  // rotating toward the selected city
	ModeFocused   Mode = "focused"   // selected city faces the camera
	ModeResetting Mode = "resetting" // rotating back to the rest orientation
	ModeResuming  Mode = "resuming"  // at rest, waiting to spin again
)

// Config holds the geometry and timings of the globe.
type Config struct {
	Radius        float64       // Radius of the globe
	MarkerOffset  float64       // Height of the marker above the surface
	SpinPeriod    time.Duration // Time for one full idle turn
	FocusDuration time.Duration // Length of the rotation toward a city
	ResetDuration time.Duration // Length of the rotation back to rest
	ResumeDelay   time.Duration // Time from a reset until the idle spin resumes
	PulsePeriod   time.Duration // Length of one marker pulse
	PulsePeak     float64       // Largest marker scale during a pulse
}

// DefaultConfig returns the timings the globe was designed with.
func DefaultConfig() Config {
	return Config{
		Radius:        geo.DefaultRadius,
		MarkerOffset:  0.02,
		SpinPeriod:    40 * time.Second,
		FocusDuration: 2 * time.Second,
		ResetDuration: time.Second,
		ResumeDelay:   1500 * time.Millisecond,
		PulsePeriod:   2 * time.Second,
		PulsePeak:     1.5,
	}
}

// Marker is the pulsing dot placed over the selected city.
type Marker struct {
	City     models.City
	Position models.Point3D
	Scale    float64
}

// Focus describes the rotation started toward a city.
type Focus struct {
	City    models.City
	Surface models.Point3D       // Projected surface point of the city
	Marker  models.Point3D       // Marker position above the surface
	From    models.Orientation   // Orientation when the rotation started
	Delta   models.RotationDelta // Shortest rotation toward the city
	Target  models.Orientation   // Orientation once the rotation completes
}

// State is a copy of the globe state.
type State struct {
	Mode        Mode
	Orientation models.Orientation
	Progress    float64 // Progress of the running rotation in [0, 1], 1 when idle
	Marker      *Marker
}

// Globe is the presentation state of the globe. It is safe for concurrent use.
type Globe struct {
	cfg       Config
	projector *geo.Projector
	planner   *geo.Planner

	mu          sync.Mutex
	mode        Mode
	orientation models.Orientation
	active      *rotation
	sinceReset  time.Duration
	marker      *Marker
	markerAge   time.Duration
}

// NewGlobe creates a spinning globe at rest orientation. Diagnostics go to obs, which may be nil.
func NewGlobe(cfg Config, obs geo.Observer) *Globe {
	return &Globe{
		cfg:       cfg,
		projector: geo.NewProjector(cfg.Radius, obs),
		planner:   geo.NewPlanner(obs),
		mode:      ModeSpinning,
	}
}

// Focus stops whatever the globe is doing, places the marker over city and starts the shortest
// rotation that brings it to the front.
func (g *Globe) Focus(ctx context.Context, city models.City) Focus {
	surface := g.projector.Project(ctx, city.Name, city.Coordinates)
	marker := geo.MarkerPosition(surface, g.cfg.Radius, g.cfg.MarkerOffset)
	lat, lon := geo.ImpliedCoordinates(surface, g.cfg.Radius)

	g.mu.Lock()
	defer g.mu.Unlock()

	from := g.orientation
	delta := g.planner.Plan(ctx, city.Name, lat, lon, from)
	target := wrap(from.Apply(delta))

	g.active = &rotation{from: from, to: from.Apply(delta), settle: target, duration: g.cfg.FocusDuration}
	g.mode = ModeFocusing
	g.marker = &Marker{City: city, Position: marker, Scale: 1}
	g.markerAge = 0

	return Focus{
		City:    city,
		Surface: surface,
		Marker:  marker,
		From:    from,
		Delta:   delta,
		Target:  target,
	}
}

// Reset removes the marker and rotates the globe back to its rest orientation, taking at most
// half a turn on each axis.
// The idle spin resumes ResumeDelay after the reset starts, once the rotation has finished.
func (g *Globe) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	from := g.orientation
	back := models.RotationDelta{X: geo.NormalizeAngle(-from.X), Y: geo.NormalizeAngle(-from.Y)}

	g.marker = nil
	g.active = &rotation{from: from, to: from.Apply(back), duration: g.cfg.ResetDuration}
	g.mode = ModeResetting
	g.sinceReset = 0
}

// Advance moves the globe forward by dt.
func (g *Globe) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.marker != nil {
		g.markerAge += dt
		g.marker.Scale = pulseScale(g.markerAge, g.cfg.PulsePeriod, g.cfg.PulsePeak)
	}

	switch g.mode {
	case ModeSpinning:
		g.spin(dt)
	case ModeFocusing:
		g.animate(dt, ModeFocused)
	case ModeResetting:
		g.sinceReset += dt
		g.animate(dt, ModeResuming)
		g.maybeResume()
	case ModeResuming:
		g.sinceReset += dt
		g.maybeResume()
	case ModeFocused:
	}
}

func (g *Globe) spin(dt time.Duration) {
	if g.cfg.SpinPeriod <= 0 {
		return
	}
	rate := 2 * math.Pi / g.cfg.SpinPeriod.Seconds()
	g.orientation.Y = geo.NormalizeAngle(g.orientation.Y + rate*dt.Seconds())
}

func (g *Globe) animate(dt time.Duration, next Mode) {
	if g.active == nil {
		g.mode = next
		return
	}
	g.active.step(dt)
	g.orientation = g.active.sample()
	if g.active.done() {
		g.orientation = g.active.settle
		g.active = nil
		g.mode = next
	}
}

func (g *Globe) maybeResume() {
	if g.mode == ModeResuming && g.sinceReset >= g.cfg.ResumeDelay {
		g.mode = ModeSpinning
	}
}

// wrap brings both angles of o into [-π, π].
func wrap(o models.Orientation) models.Orientation {
	return models.Orientation{X: geo.NormalizeAngle(o.X), Y: geo.NormalizeAngle(o.Y)}
}

// Animating reports whether a rotation is running.
func (g *Globe) Animating() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.active != nil
}

// Orientation returns the current presentation orientation.
func (g *Globe) Orientation() models.Orientation {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.orientation
}

// State returns a copy of the globe state.
func (g *Globe) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := State{Mode: g.mode, Orientation: g.orientation, Progress: 1}
	if g.active != nil {
		state.Progress = g.active.progress()
	}
	if g.marker != nil {
		marker := *g.marker
		state.Marker = &marker
	}
	return state
}

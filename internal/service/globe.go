package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/globe/internal/catalog"
	"github.com/UnknownOlympus/globe/internal/metrics"
	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/UnknownOlympus/globe/internal/scene"
	"github.com/UnknownOlympus/globe/internal/session"
	"github.com/UnknownOlympus/globe/internal/starfield"
	"github.com/google/uuid"
)

// State is everything the host shell needs to draw one frame.
type State struct {
	Session session.Snapshot
	Globe   scene.State
}

// DefaultFrameInterval is used when the service is given a non-positive frame interval.
const DefaultFrameInterval = 50 * time.Millisecond

// GlobeService provides the operations of the home screen,
// including search, city selection, the globe animation loop,
// the star field and metrics tracking.
type GlobeService struct {
	log           *slog.Logger     // Logger for logging service activities
	catalog       *catalog.Catalog // Static list of selectable cities
	session       *session.Session // Search and selection state
	globe         *scene.Globe     // Presentation state of the globe
	metrics       *metrics.Metrics // Metrics for tracking service activity
	frameInterval time.Duration    // Interval between two frames

	starsOnce sync.Once
	starCfg   starfield.Config
	stars     []models.Star

	// selectMu orders session and globe updates so they never disagree.
	selectMu sync.Mutex
}

// NewGlobeService creates a new instance of GlobeService.
// It takes a logger, the city catalog, the session, the globe, metrics for monitoring,
// the star field settings and the interval between frames, DefaultFrameInterval when
// non-positive. It returns a pointer to the newly created GlobeService.
func NewGlobeService(
	log *slog.Logger,
	cat *catalog.Catalog,
	sess *session.Session,
	globe *scene.Globe,
	metrics *metrics.Metrics,
	starCfg starfield.Config,
	frameInterval time.Duration,
) *GlobeService {
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}

	return &GlobeService{
		log:           log,
		catalog:       cat,
		session:       sess,
		globe:         globe,
		metrics:       metrics,
		starCfg:       starCfg,
		frameInterval: frameInterval,
	}
}

// Run advances the globe once per frame interval until the context is cancelled.
func (gs *GlobeService) Run(ctx context.Context) {
	ticker := time.NewTicker(gs.frameInterval)
	defer ticker.Stop()

	gs.log.InfoContext(ctx, "Globe animation loop started...", "frame_interval", gs.frameInterval)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			gs.log.InfoContext(ctx, "Globe animation loop stopped.")
			return
		case now := <-ticker.C:
			gs.Advance(now.Sub(last))
			last = now
		}
	}
}

// Advance moves the globe forward by dt and updates the animation metrics.
func (gs *GlobeService) Advance(dt time.Duration) {
	gs.globe.Advance(dt)
	gs.metrics.Frames.Inc()
	if gs.globe.Animating() {
		gs.metrics.ActiveAnimations.Set(1)
	} else {
		gs.metrics.ActiveAnimations.Set(0)
	}
}

// StartSearch opens the search box.
func (gs *GlobeService) StartSearch(ctx context.Context) {
	gs.session.StartSearch()
	gs.log.DebugContext(ctx, "Search started")
}

// Search sets the search text and returns the matching cities.
func (gs *GlobeService) Search(ctx context.Context, text string) []models.City {
	gs.session.SetSearchText(text)
	results := gs.session.FilteredCities()

	gs.metrics.SearchQueries.Inc()
	gs.metrics.SearchResults.Observe(float64(len(results)))
	gs.log.DebugContext(ctx, "Searched cities", "text", text, "results", len(results))

	return results
}

// CancelSearch closes the search box and clears its text.
func (gs *GlobeService) CancelSearch(ctx context.Context) {
	gs.session.CancelSearch()
	gs.log.DebugContext(ctx, "Search cancelled")
}

// Select selects the city with the given ID and rotates the globe toward it.
func (gs *GlobeService) Select(ctx context.Context, id uuid.UUID) (scene.Focus, error) {
	city, err := gs.catalog.ByID(id)
	if err != nil {
		return scene.Focus{}, fmt.Errorf("failed to select city: %w", err)
	}
	return gs.focus(ctx, city), nil
}

// SelectByName selects the city with the given name, ignoring case, and rotates the globe toward it.
func (gs *GlobeService) SelectByName(ctx context.Context, name string) (scene.Focus, error) {
	city, err := gs.catalog.ByName(name)
	if err != nil {
		return scene.Focus{}, fmt.Errorf("failed to select city: %w", err)
	}
	return gs.focus(ctx, city), nil
}

func (gs *GlobeService) focus(ctx context.Context, city models.City) scene.Focus {
	gs.selectMu.Lock()
	defer gs.selectMu.Unlock()

	gs.session.SelectCity(city)
	focus := gs.globe.Focus(ctx, city)

	gs.metrics.Selections.WithLabelValues(city.Name).Inc()
	dx, dy := focus.Delta.Degrees()
	gs.log.InfoContext(ctx, "Rotating globe to city",
		"city", city.Name,
		"country", city.Country,
		"delta_x_deg", dx,
		"delta_y_deg", dy,
	)

	return focus
}

// ClearSelection drops the selected city and sends the globe back to its idle spin.
func (gs *GlobeService) ClearSelection(ctx context.Context) {
	gs.selectMu.Lock()
	defer gs.selectMu.Unlock()

	gs.session.ClearSelectedCity()
	gs.globe.Reset()
	gs.log.InfoContext(ctx, "Globe rotating back to rest orientation")
}

// State returns the current session and globe state.
func (gs *GlobeService) State() State {
	gs.selectMu.Lock()
	defer gs.selectMu.Unlock()

	return State{Session: gs.session.Snapshot(), Globe: gs.globe.State()}
}

// Stars returns the background star field. It is generated once, on first use,
// with twinkling stars already faded.
func (gs *GlobeService) Stars() []models.Star {
	gs.starsOnce.Do(func() {
		gs.stars = starfield.Twinkle(starfield.Generate(gs.starCfg))
	})

	out := make([]models.Star, len(gs.stars))
	copy(out, gs.stars)
	return out
}

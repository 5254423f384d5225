package service

import (
	"context"
	"log/slog"
	"time"
)

// Tour selects a list of cities one after another, as if a user picked them from the search results.
type Tour struct {
	log      *slog.Logger
	svc      *GlobeService
	cities   []string
	interval time.Duration
}

// NewTour creates a tour over the named cities, staying interval on each.
func NewTour(log *slog.Logger, svc *GlobeService, cities []string, interval time.Duration) *Tour {
	return &Tour{log: log, svc: svc, cities: cities, interval: interval}
}

// Run visits every city once, then clears the selection so the globe spins again.
// Unknown city names are logged and skipped. Run returns early when the context is cancelled.
func (t *Tour) Run(ctx context.Context) {
	if len(t.cities) == 0 {
		return
	}

	t.log.InfoContext(ctx, "Tour started", "stops", len(t.cities))

	for idx, name := range t.cities {
		t.svc.StartSearch(ctx)
		t.svc.Search(ctx, name)
		if _, err := t.svc.SelectByName(ctx, name); err != nil {
			t.log.WarnContext(ctx, "Skipping tour stop", "stop", idx, "city", name, "error", err)
			t.svc.CancelSearch(ctx)
			continue
		}

		if !t.wait(ctx) {
			t.log.InfoContext(ctx, "Tour interrupted", "stop", idx)
			return
		}
	}

	t.svc.ClearSelection(ctx)
	t.log.InfoContext(ctx, "Tour finished")
}

func (t *Tour) wait(ctx context.Context) bool {
	timer := time.NewTimer(t.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

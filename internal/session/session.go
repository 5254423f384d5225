// Package session keeps the state of the home screen: the search box and the selected city.
package session

import (
	"sync"

	"github.com/UnknownOlympus/globe/internal/catalog"
	"github.com/UnknownOlympus/globe/internal/models"
)

// Snapshot is a copy of the session state at one revision.
type Snapshot struct {
	Revision     uint64
	SelectedCity *models.City
	SearchText   string
	IsSearching  bool
	Results      []models.City
}

// Session is the search and selection state of a single user. It is safe for concurrent use.
type Session struct {
	catalog *catalog.Catalog
	limit   int

	mu          sync.RWMutex
	revision    uint64
	selected    *models.City
	searchText  string
	isSearching bool
}

// New creates a session over cat. Searches return at most limit cities;
// a non-positive limit means catalog.DefaultLimit.
func New(cat *catalog.Catalog, limit int) *Session {
	if limit <= 0 {
		limit = catalog.DefaultLimit
	}
	return &Session{catalog: cat, limit: limit}
}

// StartSearch enters search mode.
func (s *Session) StartSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isSearching = true
	s.revision++
}

// SetSearchText replaces the search text.
func (s *Session) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchText = text
	s.revision++
}

// CancelSearch leaves search mode and clears the search text.
func (s *Session) CancelSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isSearching = false
	s.searchText = ""
	s.revision++
}

// SelectCity selects city, leaves search mode and clears the search text.
func (s *Session) SelectCity(city models.City) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = &city
	s.isSearching = false
	s.searchText = ""
	s.revision++
}

// ClearSelectedCity drops the current selection.
func (s *Session) ClearSelectedCity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	s.revision++
}

// SelectedCity returns the selected city, if any.
func (s *Session) SelectedCity() (models.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return models.City{}, false
	}
	return *s.selected, true
}

// FilteredCities returns the cities matching the current search text.
func (s *Session) FilteredCities() []models.City {
	s.mu.RLock()
	text := s.searchText
	s.mu.RUnlock()

	return s.catalog.Search(text, s.limit)
}

// Snapshot returns a copy of the current state together with the filtered cities.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	snap := Snapshot{
		Revision:    s.revision,
		SearchText:  s.searchText,
		IsSearching: s.isSearching,
	}
	if s.selected != nil {
		city := *s.selected
		snap.SelectedCity = &city
	}
	s.mu.RUnlock()

	snap.Results = s.catalog.Search(snap.SearchText, s.limit)
	return snap
}

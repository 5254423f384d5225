package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/UnknownOlympus/globe/internal/models"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// DefaultLimit is the number of cities a search returns when no limit is given.
const DefaultLimit = 8

// Common errors for the city catalog.
var (
	ErrCityNotFound = errors.New("city not found")
	ErrInvalidCity  = errors.New("invalid city")
)

// Entry describes a city before it is admitted to the catalog.
type Entry struct {
	Name      string  `mapstructure:"name"`
	Country   string  `mapstructure:"country"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// Catalog is an immutable, ordered list of cities. It is safe for concurrent use.
type Catalog struct {
	cities []models.City
	byID   map[uuid.UUID]int
	folded []foldedCity
}

type foldedCity struct {
	name    string
	country string
}

// New builds a catalog from entries, assigning each city a new ID.
// An empty entry list yields the built-in city list.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		entries = DefaultEntries()
	}

	cat := &Catalog{
		cities: make([]models.City, 0, len(entries)),
		byID:   make(map[uuid.UUID]int, len(entries)),
		folded: make([]foldedCity, 0, len(entries)),
	}

	for idx, entry := range entries {
		if err := validate(entry); err != nil {
			return nil, fmt.Errorf("entry %d: %w", idx, err)
		}

		city := models.City{
			ID:      uuid.New(),
			Name:    strings.TrimSpace(entry.Name),
			Country: strings.TrimSpace(entry.Country),
			Coordinates: models.GeoCoordinate{
				Latitude:  entry.Latitude,
				Longitude: entry.Longitude,
			},
		}
		cat.byID[city.ID] = len(cat.cities)
		cat.cities = append(cat.cities, city)
		cat.folded = append(cat.folded, foldedCity{name: fold(city.Name), country: fold(city.Country)})
	}

	return cat, nil
}

// Default returns the catalog of built-in cities.
func Default() *Catalog {
	cat, err := New(nil)
	if err != nil {
		panic(fmt.Sprintf("built-in city list is invalid: %v", err))
	}
	return cat
}

func validate(entry Entry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCity)
	}
	if !isFinite(entry.Latitude) || !isFinite(entry.Longitude) {
		return fmt.Errorf("%w: %q has non-finite coordinates", ErrInvalidCity, entry.Name)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// fold returns the case-folded form of s. A Caser holds state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// All returns every city in catalog order.
func (c *Catalog) All() []models.City {
	out := make([]models.City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Len returns the number of cities in the catalog.
func (c *Catalog) Len() int {
	return len(c.cities)
}

// Search returns up to limit cities whose name or country contains query, ignoring case.
// An empty query matches every city. A non-positive limit means DefaultLimit.
func (c *Catalog) Search(query string, limit int) []models.City {
	if limit <= 0 {
		limit = DefaultLimit
	}

	// Surrounding spaces are dropped, so a blank query lists every city like an empty one.
	needle := fold(strings.TrimSpace(query))
	out := make([]models.City, 0, min(limit, len(c.cities)))

	for idx, city := range c.cities {
		if len(out) == limit {
			break
		}
		f := c.folded[idx]
		if needle == "" || strings.Contains(f.name, needle) || strings.Contains(f.country, needle) {
			out = append(out, city)
		}
	}

	return out
}

// ByID returns the city with the given ID.
func (c *Catalog) ByID(id uuid.UUID) (models.City, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.City{}, fmt.Errorf("%w: id %s", ErrCityNotFound, id)
	}
	return c.cities[idx], nil
}

// ByName returns the first city whose name equals name, ignoring case.
func (c *Catalog) ByName(name string) (models.City, error) {
	needle := fold(strings.TrimSpace(name))
	for idx, f := range c.folded {
		if f.name == needle {
			return c.cities[idx], nil
		}
	}
	return models.City{}, fmt.Errorf("%w: name %q", ErrCityNotFound, name)
}

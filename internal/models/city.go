package models

import (
	"time"

	"github.com/google/uuid"
)

// City is a named place that can be selected on the globe.
type City struct {
	ID          uuid.UUID     // ID is the unique identifier assigned when the catalog is built.
	Name        string        // Name is the display name of the city.
	Country     string        // Country is the country or region the city belongs to.
	Coordinates GeoCoordinate // Coordinates is the location of the city.
}

// StarColor is the tint of a background star.
type StarColor string

// Star colors used by the star field.
const (
	StarWhite  StarColor = "white"
	StarYellow StarColor = "yellow"
	StarBlue   StarColor = "blue"
)

// Star is a single decorative star of the background.
// X and Y are fractions of the viewport, Size is in points.
type Star struct {
	ID              uuid.UUID
	X               float64
	Y               float64
	Size            float64
	Color           StarColor
	Opacity         float64
	ShouldTwinkle   bool
	TwinkleDuration time.Duration
	Delay           time.Duration
}

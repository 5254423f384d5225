// Package catalog holds the static list of cities that can be searched and selected.
package catalog

// DefaultEntries returns the built-in cities.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "Istanbul", Country: "Turkey", Latitude: 41.0082, Longitude: 28.9784},
		{Name: "London", Country: "United Kingdom", Latitude: 51.5074, Longitude: -0.1278},
		{Name: "New York", Country: "United States", Latitude: 40.7128, Longitude: -74.0060},
		{Name: "Tokyo", Country: "Japan", Latitude: 35.6762, Longitude: 139.6503},
		{Name: "Paris", Country: "France", Latitude: 48.8566, Longitude: 2.3522},
		{Name: "Sydney", Country: "Australia", Latitude: -33.8688, Longitude: 151.2093},
		{Name: "Dubai", Country: "UAE", Latitude: 25.2048, Longitude: 55.2708},
		{Name: "Los Angeles", Country: "United States", Latitude: 34.0522, Longitude: -118.2437},
		{Name: "Moscow", Country: "Russia", Latitude: 55.7558, Longitude: 37.6176},
		{Name: "Cairo", Country: "Egypt", Latitude: 30.0444, Longitude: 31.2357},
	}
}

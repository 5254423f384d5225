package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/globe/internal/catalog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the globe service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring server.
// - Globe: Geometry and animation timings of the globe.
// - ResultLimit: The maximum number of cities a search returns.
// - Stars: Size and seed of the background star field.
// - FrameInterval: The duration between two frames of the globe.
// - Tour: City names selected in turn by the scripted tour.
// - TourInterval: The duration each tour stop stays selected.
// - Cities: The city list, empty for the built-in list.
type Config struct {
	Env           string          // Env is the current environment: local, development, production.
	Port          int             // Port is the monitoring server port.
	Globe         GlobeConfig     // Globe holds geometry and timings.
	ResultLimit   int             // ResultLimit caps search results.
	Stars         StarsConfig     // Stars holds star field settings.
	FrameInterval time.Duration   // FrameInterval is the time between frames.
	Tour          []string        // Tour lists city names to visit.
	TourInterval  time.Duration   // TourInterval is the time spent on each city.
	Cities        []catalog.Entry // Cities replaces the built-in city list.
}

// GlobeConfig holds the geometry of the globe and the timings of its animations.
type GlobeConfig struct {
	Radius        float64
	MarkerOffset  float64
	SpinPeriod    time.Duration
	FocusDuration time.Duration
	ResetDuration time.Duration
	ResumeDelay   time.Duration
}

// StarsConfig holds the settings of the background star field.
type StarsConfig struct {
	Count int
	Seed  uint64
}

var defaults = map[string]string{
	"env":            "production",
	"health_port":    "8080",
	"radius":         "0.7",
	"marker_offset":  "0.02",
	"result_limit":   "8",
	"star_count":     "100",
	"star_seed":      "0",
	"spin_period":    "40s",
	"focus_duration": "2s",
	"reset_duration": "1s",
	"resume_delay":   "1.5s",
	"frame_interval": "50ms",
	"tour":           "",
	"tour_interval":  "5s",
}

// MustLoad loads the configuration from the environment and an optional config file and returns a Config struct.
// Environment variables use the GLOBE_ prefix, e.g. GLOBE_SPIN_PERIOD; a .env file is read first when present.
// GLOBE_CONFIG_FILE may name a YAML or JSON file carrying the same flat keys (radius, star_count, ...)
// and a list of cities.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GLOBE")
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			panic("failed to read config file " + path)
		}
	}

	var cities []catalog.Entry
	if err := v.UnmarshalKey("cities", &cities); err != nil {
		panic("failed to parse cities from configuration")
	}

	return &Config{
		Env:         v.GetString("env"),
		Port:        mustInt(v, "health_port", "failed to parse port for monitoring server from configuration"),
		ResultLimit: mustInt(v, "result_limit", "failed to parse result limit from configuration, must be an integer"),
		Globe: GlobeConfig{
			Radius:        mustFloat(v, "radius", "failed to parse globe radius from configuration"),
			MarkerOffset:  mustFloat(v, "marker_offset", "failed to parse marker offset from configuration"),
			SpinPeriod:    mustDuration(v, "spin_period", "failed to parse spin period from configuration"),
			FocusDuration: mustDuration(v, "focus_duration", "failed to parse focus duration from configuration"),
			ResetDuration: mustDuration(v, "reset_duration", "failed to parse reset duration from configuration"),
			ResumeDelay:   mustDuration(v, "resume_delay", "failed to parse resume delay from configuration"),
		},
		Stars: StarsConfig{
			Count: mustInt(v, "star_count", "failed to parse star count from configuration, must be an integer"),
			Seed:  mustUint(v, "star_seed", "failed to parse star seed from configuration, must be an unsigned integer"),
		},
		FrameInterval: mustPositiveDuration(v, "frame_interval", "failed to parse frame interval from configuration, must be a positive duration"),
		Tour:          splitList(v.GetString("tour")),
		TourInterval:  mustPositiveDuration(v, "tour_interval", "failed to parse tour interval from configuration, must be a positive duration"),
		Cities:        cities,
	}
}

func mustInt(v *viper.Viper, key, msg string) int {
	value, err := strconv.Atoi(v.GetString(key))
	if err != nil {
		panic(msg)
	}
	return value
}

func mustUint(v *viper.Viper, key, msg string) uint64 {
	value, err := strconv.ParseUint(v.GetString(key), 10, 64)
	if err != nil {
		panic(msg)
	}
	return value
}

func mustFloat(v *viper.Viper, key, msg string) float64 {
	value, err := strconv.ParseFloat(v.GetString(key), 64)
	if err != nil {
		panic(msg)
	}
	return value
}

func mustDuration(v *viper.Viper, key, msg string) time.Duration {
	value, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic(msg)
	}
	return value
}

func mustPositiveDuration(v *viper.Viper, key, msg string) time.Duration {
	value := mustDuration(v, key, msg)
	if value <= 0 {
		panic(msg)
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

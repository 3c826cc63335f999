// Package config loads service configuration from environment
// variables, with defaults suitable for local development.
package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds all configuration for the queue reporter server.
type ServerConfig struct {
	Port      int
	StorePath string
	LogLevel  string
}

// ClientConfig holds all configuration for the terminal client.
type ClientConfig struct {
	// ServerURL is the base URL of the queue reporter server.
	ServerURL string

	// Latitude/Longitude are the device's position, used for reverse
	// geocoding the location field. When HasPosition is false the
	// client shows its geolocation-unavailable state.
	Latitude    float64
	Longitude   float64
	HasPosition bool

	// GeocoderURL is the base URL of the nominatim-compatible
	// reverse geocoding service.
	GeocoderURL string

	// RefreshInterval is the cadence of the automatic report list
	// refresh.
	RefreshInterval time.Duration
}

// LoadServer loads the server configuration.
func LoadServer() *ServerConfig {
	return &ServerConfig{
		Port:      getIntEnv("PORT", 5000),
		StorePath: getEnv("STORE_PATH", "db.json"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

// LoadClient loads the client configuration.
func LoadClient() *ClientConfig {
	cfg := &ClientConfig{
		ServerURL:       getEnv("QUEUE_REPORTER_URL", "http://127.0.0.1:5000"),
		GeocoderURL:     getEnv("QUEUE_REPORTER_GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		RefreshInterval: getDurationEnv("QUEUE_REPORTER_REFRESH_INTERVAL", 10*time.Second),
	}

	lat, latOK := getFloatEnv("QUEUE_REPORTER_LAT")
	lon, lonOK := getFloatEnv("QUEUE_REPORTER_LON")
	if latOK && lonOK {
		cfg.Latitude = lat
		cfg.Longitude = lon
		cfg.HasPosition = true
	}
	return cfg
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value.
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable or returns a default value.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv gets a float environment variable, reporting whether it
// was present and well-formed.
func getFloatEnv(key string) (float64, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

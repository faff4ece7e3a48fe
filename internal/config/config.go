package config

import "os"

// Config carries the environment-driven settings of the record-keeping core.
type Config struct {
	// DBPath is the SQLite database file holding all collections.
	DBPath string
	// Namespace prefixes every persisted key so several stores can share
	// one database file.
	Namespace string
	// ElasticsearchURL enables ECS log shipping when non-empty.
	ElasticsearchURL string
	// LogLevel is the minimum zerolog level (debug, info, warn, error).
	LogLevel string
	// MonotonicIDs switches the id allocator to a persisted high-water
	// mark so deleted ids are never reused.
	MonotonicIDs bool
}

// Load reads configuration from the environment. Missing variables fall
// back to defaults; call godotenv.Load before this if a .env file is used.
func Load() Config {
	return Config{
		DBPath:           getEnvOrDefault("CLINICORE_DB_PATH", "clinicore.db"),
		Namespace:        getEnvOrDefault("CLINICORE_NAMESPACE", "clinic_"),
		ElasticsearchURL: os.Getenv("ELASTICSEARCH_URL"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		MonotonicIDs:     os.Getenv("CLINICORE_MONOTONIC_IDS") == "true",
	}
}

// Helper function to get environment variable with default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

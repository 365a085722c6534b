package config

import "os"

// Config holds all settings the server needs: the upstream inventory
// registry, the ticket system used for journal links, and the HTTP server
// itself. It is built once in main and passed down explicitly.
type Config struct {
	RegistryURL   string
	RegistryToken string
	JiraURL       string
	HTTPPort      string
	LogLevel      string
	LogHTTP       bool
}

// Load returns configuration from environment variables
func Load() *Config {
	return &Config{
		RegistryURL:   getEnv("REGISTRY_URL", "https://192.168.56.102"),
		RegistryToken: getEnv("REGISTRY_TOKEN", ""),
		JiraURL:       getEnv("JIRA_URL", "https://jira.local/browse"),
		HTTPPort:      getEnv("HTTP_PORT", "8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogHTTP:       os.Getenv("LOG_HTTP") == "true",
	}
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

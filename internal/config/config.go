package config

import (
	"os"
	"strings"

	"github.com/frankfium/personal-site/internal/constants"
)

// Config holds the application configuration
type Config struct {
	ServerAddress string
	Environment   string
	StaticDir     string
	Admin         AdminConfig
	GitHub        GitHubConfig
	CORS          CORSConfig
}

// AdminConfig holds the single admin user's credentials. It is read once at
// startup and injected into the authenticator; empty values mean login is
// not configured.
type AdminConfig struct {
	Username string
	Password string
}

// GitHubConfig holds the upstream GitHub API settings
type GitHubConfig struct {
	BaseURL   string
	UserAgent string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	corsOrigins := getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")

	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		StaticDir:     getEnv("STATIC_DIR", "./web/dist"),
		Admin: AdminConfig{
			Username: os.Getenv("ADMIN_USERNAME"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
		GitHub: GitHubConfig{
			BaseURL:   getEnv("GITHUB_API_URL", constants.GitHubAPIBaseURL),
			UserAgent: getEnv("GITHUB_USER_AGENT", constants.GitHubUserAgent),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseCommaSeparatedList(corsOrigins),
		},
	}, nil
}

// Production reports whether the service runs in production mode. It controls
// the session cookie's Secure attribute and the gin mode.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// parseCommaSeparatedList splits a comma-separated string into a slice
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return []string{}
	}

	items := strings.Split(s, ",")
	result := make([]string, 0, len(items))

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}

	return result
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

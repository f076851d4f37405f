package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv clears on cleanup; empty string means unset for our loader
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("GITHUB_API_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("ServerAddress = %q, want :8080", cfg.ServerAddress)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.Production() {
		t.Error("Production() should be false by default")
	}
	if cfg.Admin.Username != "" || cfg.Admin.Password != "" {
		t.Error("admin credentials should have no defaults")
	}
	if cfg.GitHub.BaseURL != "https://api.github.com" {
		t.Errorf("GitHub.BaseURL = %q, want https://api.github.com", cfg.GitHub.BaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("GITHUB_API_URL", "http://localhost:9999")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com, https://www.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ServerAddress != ":9090" {
		t.Errorf("ServerAddress = %q, want :9090", cfg.ServerAddress)
	}
	if !cfg.Production() {
		t.Error("Production() should be true")
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "hunter2" {
		t.Errorf("Admin = %+v", cfg.Admin)
	}
	if cfg.GitHub.BaseURL != "http://localhost:9999" {
		t.Errorf("GitHub.BaseURL = %q", cfg.GitHub.BaseURL)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://www.example.com" {
		t.Errorf("CORS.AllowedOrigins = %v", cfg.CORS.AllowedOrigins)
	}
}

func TestParseCommaSeparatedList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "single", input: "a", want: 1},
		{name: "multiple with spaces", input: "a, b , c", want: 3},
		{name: "trailing comma", input: "a,b,", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseCommaSeparatedList(tt.input); len(got) != tt.want {
				t.Errorf("parseCommaSeparatedList(%q) = %v, want %d items", tt.input, got, tt.want)
			}
		})
	}
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/frankfium/personal-site/internal/auth"
	"github.com/frankfium/personal-site/internal/config"
	"github.com/frankfium/personal-site/internal/github"
	"github.com/frankfium/personal-site/internal/http"
	"github.com/frankfium/personal-site/internal/logger"
)

func main() {
	// Load .env file if it exists (optional, won't error if missing)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg := logger.InitLogger(cfg.Environment)

	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		lg.Warn("admin credentials not configured - login will be unavailable")
	}

	authenticator := auth.NewAuthenticator(cfg.Admin)
	githubClient := github.NewClient(
		github.WithBaseURL(cfg.GitHub.BaseURL),
		github.WithUserAgent(cfg.GitHub.UserAgent),
	)

	server := http.NewServer(cfg, authenticator, githubClient)

	// Shut down gracefully on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Info("starting server", "address", cfg.ServerAddress, "environment", cfg.Environment)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	lg.Info("server exited properly")
}

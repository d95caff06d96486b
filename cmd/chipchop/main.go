package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chipchop/chipchop/internal/api"
	"github.com/chipchop/chipchop/internal/config"
	"github.com/chipchop/chipchop/internal/presence"
	"github.com/chipchop/chipchop/internal/repository"
	"github.com/chipchop/chipchop/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize the project store (creates the projects root if needed)
	projectRepo, err := repository.NewProjectRepository(cfg.Storage.ProjectsDir)
	if err != nil {
		logger.Fatal("Failed to initialize project store", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(logger)
	projectService := service.NewProjectService(projectRepo, logger)
	gitService := service.NewGitService(projectRepo, cfg.Git.AuthorName, cfg.Git.AuthorEmail, logger)
	copilotService := service.NewCopilotService()
	cloudService := service.NewCloudService(logger)
	hub := presence.NewHub(logger)

	// Setup router
	router := api.SetupRouter(api.RouterConfig{
		AuthService:    authService,
		ProjectService: projectService,
		GitService:     gitService,
		CopilotService: copilotService,
		CloudService:   cloudService,
		Hub:            hub,
		Logger:         logger,
		AllowOrigins:   cfg.CORS.AllowOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting ChipChop server",
			zap.String("address", cfg.Address()),
			zap.String("projects_dir", cfg.Storage.ProjectsDir),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

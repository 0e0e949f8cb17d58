// cmd/revenue-engine-scheduler/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ayais12210-hub/revenue-engine/internal/app"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/connector"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/scheduler"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Initialize repositories
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create order repository: %w", err)
	}
	leadRepo, err := persistence.NewGormLeadRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create lead repository: %w", err)
	}
	subscriptionRepo, err := persistence.NewGormSubscriptionRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create subscription repository: %w", err)
	}
	kpiRepo, err := persistence.NewGormKPIRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create kpi repository: %w", err)
	}
	contentRepo, err := persistence.NewGormContentRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create content repository: %w", err)
	}
	runRepo, err := persistence.NewGormAutomationRunRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create automation run repository: %w", err)
	}

	// Initialize connectors for the briefing pipeline
	openRouterConnector, err := connector.NewOpenRouterConnector(&cfg.Connectors.OpenRouter, log)
	if err != nil {
		return fmt.Errorf("failed to create openrouter connector: %w", err)
	}
	elevenLabsConnector, err := connector.NewElevenLabsConnector(&cfg.Connectors.ElevenLabs, log)
	if err != nil {
		return fmt.Errorf("failed to create elevenlabs connector: %w", err)
	}
	inVideoConnector, err := connector.NewInVideoConnector(&cfg.Connectors.InVideo, log)
	if err != nil {
		return fmt.Errorf("failed to create invideo connector: %w", err)
	}
	polygonConnector, err := connector.NewPolygonConnector(&cfg.Connectors.Polygon, log)
	if err != nil {
		return fmt.Errorf("failed to create polygon connector: %w", err)
	}
	firecrawlConnector, err := connector.NewFirecrawlConnector(&cfg.Connectors.Firecrawl, log)
	if err != nil {
		return fmt.Errorf("failed to create firecrawl connector: %w", err)
	}
	smtpConnector, err := connector.NewSMTPConnector(&cfg.Connectors.SMTP, log)
	if err != nil {
		return fmt.Errorf("failed to create smtp connector: %w", err)
	}

	// Initialize services
	briefingService, err := app.NewBriefingService(
		polygonConnector, firecrawlConnector, openRouterConnector,
		elevenLabsConnector, inVideoConnector,
		contentRepo, subscriptionRepo, smtpConnector, runRepo, log,
	)
	if err != nil {
		return fmt.Errorf("failed to create briefing service: %w", err)
	}

	kpiService, err := app.NewKPIService(kpiRepo, leadRepo, orderRepo, log)
	if err != nil {
		return fmt.Errorf("failed to create kpi service: %w", err)
	}

	// Initialize the timetable
	sched, err := scheduler.NewScheduler(&cfg.Scheduler, briefingService, kpiService, log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	// Stop the timetable on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		log.Info("Received signal ", sig, ", stopping scheduler")
		sched.Stop()
	}()

	sched.StartBlocking()
	log.Info("Scheduler stopped")
	return nil
}

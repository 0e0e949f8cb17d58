package commands

import (
	"fmt"
	"os"

	"github.com/ayais12210-hub/revenue-engine/internal/app"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/connector"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// automationServices bundles the services the CLI commands run.
type automationServices struct {
	leadIntake leads.LeadIntakeService
	briefing   content.BriefingService
	kpi        kpi.KPIService
	logger     logger.Logger
}

func resolveConfigPath(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
		return path
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "../../configs/rest-app.yaml"
}

// setupServices builds the automation service graph from configuration.
func setupServices(cmd *cobra.Command) (*automationServices, error) {
	cfg, err := config.InitializeRestConfig(resolveConfigPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, err
	}
	leadRepo, err := persistence.NewGormLeadRepository(db, log)
	if err != nil {
		return nil, err
	}
	subscriptionRepo, err := persistence.NewGormSubscriptionRepository(db, log)
	if err != nil {
		return nil, err
	}
	kpiRepo, err := persistence.NewGormKPIRepository(db, log)
	if err != nil {
		return nil, err
	}
	contentRepo, err := persistence.NewGormContentRepository(db, log)
	if err != nil {
		return nil, err
	}
	runRepo, err := persistence.NewGormAutomationRunRepository(db, log)
	if err != nil {
		return nil, err
	}

	notionConnector, err := connector.NewNotionConnector(&cfg.Connectors.Notion, log)
	if err != nil {
		return nil, err
	}
	linearConnector, err := connector.NewLinearConnector(&cfg.Connectors.Linear, log)
	if err != nil {
		return nil, err
	}
	exploriumConnector, err := connector.NewExploriumConnector(&cfg.Connectors.Explorium, log)
	if err != nil {
		return nil, err
	}
	smtpConnector, err := connector.NewSMTPConnector(&cfg.Connectors.SMTP, log)
	if err != nil {
		return nil, err
	}
	openRouterConnector, err := connector.NewOpenRouterConnector(&cfg.Connectors.OpenRouter, log)
	if err != nil {
		return nil, err
	}
	elevenLabsConnector, err := connector.NewElevenLabsConnector(&cfg.Connectors.ElevenLabs, log)
	if err != nil {
		return nil, err
	}
	inVideoConnector, err := connector.NewInVideoConnector(&cfg.Connectors.InVideo, log)
	if err != nil {
		return nil, err
	}
	polygonConnector, err := connector.NewPolygonConnector(&cfg.Connectors.Polygon, log)
	if err != nil {
		return nil, err
	}
	firecrawlConnector, err := connector.NewFirecrawlConnector(&cfg.Connectors.Firecrawl, log)
	if err != nil {
		return nil, err
	}

	leadService, err := app.NewLeadService(leadRepo, log)
	if err != nil {
		return nil, err
	}
	leadIntakeService, err := app.NewLeadIntakeService(
		leadService, leadRepo, exploriumConnector, smtpConnector,
		notionConnector, linearConnector, runRepo, log,
	)
	if err != nil {
		return nil, err
	}

	briefingService, err := app.NewBriefingService(
		polygonConnector, firecrawlConnector, openRouterConnector,
		elevenLabsConnector, inVideoConnector,
		contentRepo, subscriptionRepo, smtpConnector, runRepo, log,
	)
	if err != nil {
		return nil, err
	}

	kpiService, err := app.NewKPIService(kpiRepo, leadRepo, orderRepo, log)
	if err != nil {
		return nil, err
	}

	return &automationServices{
		leadIntake: leadIntakeService,
		briefing:   briefingService,
		kpi:        kpiService,
		logger:     log,
	}, nil
}

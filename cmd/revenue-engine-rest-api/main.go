// cmd/revenue-engine-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ayais12210-hub/revenue-engine/internal/api/rest/v1"
	"github.com/ayais12210-hub/revenue-engine/internal/app"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/content"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/kpi"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/orders"
	"github.com/ayais12210-hub/revenue-engine/internal/domain/payments"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/cache"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/connector"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/gateway"
	"github.com/ayais12210-hub/revenue-engine/internal/infrastructure/persistence"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/config"
	"github.com/ayais12210-hub/revenue-engine/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
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

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	stripeDecoder payments.WebhookDecoder
	paypalDecoder payments.WebhookDecoder
	services      *appServices
}

type appServices struct {
	webhookProcessor payments.WebhookProcessor
	fulfillment      orders.FulfillmentService
	leadIntake       leads.LeadIntakeService
	kpi              kpi.KPIService
	copyKit          content.CopyKitService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	orderRepo, err := persistence.NewGormOrderRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create order repository: %w", err)
	}
	leadRepo, err := persistence.NewGormLeadRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead repository: %w", err)
	}
	productRepo, err := persistence.NewGormProductRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create product repository: %w", err)
	}
	subscriptionRepo, err := persistence.NewGormSubscriptionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription repository: %w", err)
	}
	kpiRepo, err := persistence.NewGormKPIRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kpi repository: %w", err)
	}
	runRepo, err := persistence.NewGormAutomationRunRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create automation run repository: %w", err)
	}

	// Initialize gateway decoders
	stripeDecoder, err := gateway.NewStripeDecoder(&cfg.Stripe, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe decoder: %w", err)
	}
	paypalDecoder, err := gateway.NewPayPalDecoder(&cfg.PayPal, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal decoder: %w", err)
	}

	// Initialize the webhook dedup cache
	deduper := cache.NewNoopEventDeduper()
	if cfg.Redis.Enabled {
		deduper, err = cache.NewRedisEventDeduper(&cfg.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create event deduper: %w", err)
		}
	}

	// Initialize connectors
	notionConnector, err := connector.NewNotionConnector(&cfg.Connectors.Notion, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notion connector: %w", err)
	}
	linearConnector, err := connector.NewLinearConnector(&cfg.Connectors.Linear, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create linear connector: %w", err)
	}
	exploriumConnector, err := connector.NewExploriumConnector(&cfg.Connectors.Explorium, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create explorium connector: %w", err)
	}
	smtpConnector, err := connector.NewSMTPConnector(&cfg.Connectors.SMTP, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp connector: %w", err)
	}

	// Initialize services
	fulfillmentService, err := app.NewFulfillmentService(orderRepo, notionConnector, runRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create fulfillment service: %w", err)
	}

	webhookProcessor, err := app.NewWebhookProcessor(
		orderRepo, subscriptionRepo, productRepo,
		fulfillmentService, smtpConnector, runRepo, deduper, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook processor: %w", err)
	}

	leadService, err := app.NewLeadService(leadRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead service: %w", err)
	}

	leadIntakeService, err := app.NewLeadIntakeService(
		leadService, leadRepo, exploriumConnector, smtpConnector,
		notionConnector, linearConnector, runRepo, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead intake service: %w", err)
	}

	kpiService, err := app.NewKPIService(kpiRepo, leadRepo, orderRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create kpi service: %w", err)
	}

	copyKitService, err := app.NewCopyKitService(&cfg.CopyKit, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create copykit service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		stripeDecoder: stripeDecoder,
		paypalDecoder: paypalDecoder,
		services: &appServices{
			webhookProcessor: webhookProcessor,
			fulfillment:      fulfillmentService,
			leadIntake:       leadIntakeService,
			kpi:              kpiService,
			copyKit:          copyKitService,
		},
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.stripeDecoder,
		deps.paypalDecoder,
		deps.services.webhookProcessor,
		deps.services.fulfillment,
		deps.services.leadIntake,
		deps.services.kpi,
		deps.services.copyKit,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"gorm.io/gorm"

	catalogmemory "github.com/pickbotics/storefront/internal/domains/catalog/adapters/memory"
	catalogpostgres "github.com/pickbotics/storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogports "github.com/pickbotics/storefront/internal/domains/catalog/ports"
	ordersmemory "github.com/pickbotics/storefront/internal/domains/orders/adapters/memory"
	orderspostgres "github.com/pickbotics/storefront/internal/domains/orders/adapters/persistence/postgres"
	ordersports "github.com/pickbotics/storefront/internal/domains/orders/ports"
	routesmemory "github.com/pickbotics/storefront/internal/domains/routes/adapters/memory"
	"github.com/pickbotics/storefront/internal/domains/routes/adapters/orderpicks"
	routespostgres "github.com/pickbotics/storefront/internal/domains/routes/adapters/persistence/postgres"
	routesapp "github.com/pickbotics/storefront/internal/domains/routes/application"
	routesdomain "github.com/pickbotics/storefront/internal/domains/routes/domain"
	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
	routeworkflows "github.com/pickbotics/storefront/internal/durable/temporal/workflows/routes"
	"github.com/pickbotics/storefront/internal/platform/migrations"
	platformobservability "github.com/pickbotics/storefront/internal/platform/observability"
	platformpostgres "github.com/pickbotics/storefront/internal/platform/postgres"
	routeactivities "github.com/pickbotics/storefront/internal/platform/temporal/activities/routes"
)

func main() {
	ctx := context.Background()
	const serviceName = "storefront-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			logger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	planner := routesapp.NewService(
		buildRouteRepository(db),
		orderpicks.NewResolver(buildOrderRepository(db), buildProductRepository(db)),
		fleetFromEnv(logger),
	)
	activities := routeactivities.NewActivities(planner)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, routeworkflows.PlanningTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(routeworkflows.PlanningWorkflow, workflow.RegisterOptions{Name: routeworkflows.PlanningWorkflowName})
	w.RegisterActivityWithOptions(activities.PlanRoutes, activity.RegisterOptions{Name: routeactivities.PlanRoutesActivityName})

	logger.Info("worker listening", slog.String("taskQueue", routeworkflows.PlanningTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildProductRepository(db *gorm.DB) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	return catalogpostgres.NewRepository(db)
}

func buildOrderRepository(db *gorm.DB) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	return orderspostgres.NewRepository(db)
}

func buildRouteRepository(db *gorm.DB) routesports.Repository {
	if db == nil {
		return routesmemory.NewRepository()
	}
	return routespostgres.NewRepository(db)
}

func fleetFromEnv(logger *slog.Logger) []routesdomain.Bot {
	spec := envOrDefault("BOT_HOMES", routesdomain.DefaultFleetSpec)
	fleet, err := routesdomain.ParseFleet(spec)
	if err != nil {
		logger.Warn("invalid BOT_HOMES, using default fleet", slog.String("error", err.Error()))
		return routesdomain.DefaultFleet()
	}
	return fleet
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

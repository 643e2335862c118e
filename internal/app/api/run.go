package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	catalogmemory "github.com/pickbotics/storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/pickbotics/storefront/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/pickbotics/storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/pickbotics/storefront/internal/domains/catalog/application"
	catalogports "github.com/pickbotics/storefront/internal/domains/catalog/ports"
	ordersinventory "github.com/pickbotics/storefront/internal/domains/orders/adapters/inventory"
	ordersmemory "github.com/pickbotics/storefront/internal/domains/orders/adapters/memory"
	ordersobs "github.com/pickbotics/storefront/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/pickbotics/storefront/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/pickbotics/storefront/internal/domains/orders/application"
	ordersports "github.com/pickbotics/storefront/internal/domains/orders/ports"
	routesmemory "github.com/pickbotics/storefront/internal/domains/routes/adapters/memory"
	routesobs "github.com/pickbotics/storefront/internal/domains/routes/adapters/observability"
	"github.com/pickbotics/storefront/internal/domains/routes/adapters/orderpicks"
	routespostgres "github.com/pickbotics/storefront/internal/domains/routes/adapters/persistence/postgres"
	routesworkflows "github.com/pickbotics/storefront/internal/domains/routes/adapters/workflows"
	routesapp "github.com/pickbotics/storefront/internal/domains/routes/application"
	routesports "github.com/pickbotics/storefront/internal/domains/routes/ports"
	usersmemory "github.com/pickbotics/storefront/internal/domains/users/adapters/memory"
	usersobs "github.com/pickbotics/storefront/internal/domains/users/adapters/observability"
	userspostgres "github.com/pickbotics/storefront/internal/domains/users/adapters/persistence/postgres"
	usersapp "github.com/pickbotics/storefront/internal/domains/users/application"
	usersports "github.com/pickbotics/storefront/internal/domains/users/ports"
	"github.com/pickbotics/storefront/internal/platform/migrations"
	platformobservability "github.com/pickbotics/storefront/internal/platform/observability"
	platformpostgres "github.com/pickbotics/storefront/internal/platform/postgres"
	storefrontserver "github.com/pickbotics/storefront/server"
)

// Run boots the storefront HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
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
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	productRepo := buildProductRepository(db, logger)
	orderRepo := buildOrderRepository(db)
	routeRepo := buildRouteRepository(db)
	userRepo, sessionStore := buildUserStores(db)

	coreOrderService := ordersapp.NewService(orderRepo, ordersinventory.NewCatalogInventory(productRepo))
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	productService := catalogobs.New(
		catalogapp.NewService(productRepo, coreOrderService),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	coreRouteService := routesapp.NewService(routeRepo, orderpicks.NewResolver(orderRepo, productRepo), cfg.Fleet())
	var routeWorkflows routesports.WorkflowOrchestrator = routesworkflows.NewInlineRouteWorkflows(coreRouteService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, planning routes inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		routeWorkflows = routesworkflows.NewTemporalRouteWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}
	routeService := routesobs.New(
		routesapp.NewService(routeRepo, orderpicks.NewResolver(orderRepo, productRepo), cfg.Fleet(), routesapp.WithOrchestrator(routeWorkflows)),
		routesobs.WithLogger(logger),
		routesobs.WithTracer(instruments.Tracer("internal.routes.application")),
		routesobs.WithMeter(instruments.Meter("internal.routes.application")),
	)

	userService := usersobs.New(
		usersapp.NewService(userRepo, sessionStore),
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.users.application")),
	)

	handlers := storefrontserver.ApiHandleFunctions{
		ProductsAPI: storefrontserver.NewProductsAPI(productService),
		OrdersAPI:   storefrontserver.NewOrdersAPI(orderService),
		RoutesAPI:   storefrontserver.NewRoutesAPI(routeService),
		AuthAPI:     storefrontserver.NewAuthAPI(userService),
	}

	router := storefrontserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("storefront API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildProductRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("product repository configured with postgres")
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

func buildUserStores(db *gorm.DB) (usersports.Repository, usersports.SessionStore) {
	if db == nil {
		return usersmemory.NewRepository(), usersmemory.NewSessionStore()
	}
	return userspostgres.NewRepository(db), userspostgres.NewSessionStore(db, userspostgres.DefaultSessionTTL)
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

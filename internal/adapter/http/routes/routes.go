package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	_ "os_service/docs" // This will be auto-generated
	"os_service/internal/adapter/gateway"
	"os_service/internal/adapter/http/handlers"
	"os_service/internal/adapter/persistence/repository"
	"os_service/internal/infrastructure/config"
	"os_service/internal/infrastructure/database"
	"os_service/internal/infrastructure/logger"
	"os_service/internal/infrastructure/metrics"
	"os_service/internal/usecase"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	PathV1          = "/v1"
	shutdownTimeout = 10 * time.Second
)

// Run builds the router and serves until SIGINT or SIGTERM.
func Run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router, err := NewRouter(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires storage, gateways, the order use case and its routes.
func NewRouter(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	orderHandler, err := buildOrderHandler(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	setMiddlewares(router, cfg, log)
	registerRoutes(router, orderHandler)
	return router, nil
}

func registerRoutes(router *gin.Engine, orderHandler *handlers.OrderHandler) {
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
}

func buildOrderHandler(ctx context.Context, cfg *config.Config, log *zap.Logger) (*handlers.OrderHandler, error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.Config{
		Region:          cfg.DynamoDB.Region,
		Endpoint:        cfg.DynamoDB.Endpoint,
		AccessKeyID:     cfg.DynamoDB.AccessKeyID,
		SecretAccessKey: cfg.DynamoDB.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	tables := database.Tables{
		Orders:         cfg.DynamoDB.OrdersTable,
		OrderCodes:     cfg.DynamoDB.OrderCodesTable,
		Services:       cfg.DynamoDB.ServicesTable,
		InventoryItems: cfg.DynamoDB.InventoryItemsTable,
		Vehicles:       cfg.DynamoDB.VehiclesTable,
		Customers:      cfg.DynamoDB.CustomersTable,
	}
	if cfg.DynamoDB.AutoCreate {
		if err := database.EnsureTables(ctx, ddb, tables, log); err != nil {
			return nil, err
		}
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, tables)
	catalog := gateway.NewServiceCatalogDynamoGateway(ddb, tables.Services)
	inventory := gateway.NewInventoryDynamoGateway(ddb, tables.InventoryItems)
	registry := gateway.NewRegistryDynamoGateway(ddb, tables.Vehicles, tables.Customers)

	orderUseCase := usecase.NewOrderUseCase(orderRepo, catalog, inventory, registry, registry, nil, log)
	return handlers.NewOrderHandler(orderUseCase), nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(logger.Recovery(log))
	if cfg.Telemetry.Enabled {
		router.Use(otelgin.Middleware(cfg.App.Name))
	}
	router.Use(metrics.GinMiddleware())
	router.Use(logger.GinMiddleware(log))
}

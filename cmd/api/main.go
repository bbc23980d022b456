package main

import (
	"context"
	"os"
	_ "os_service/docs"
	"os_service/internal/adapter/http/routes"
	"os_service/internal/infrastructure/config"
	"os_service/internal/infrastructure/logger"
	"os_service/internal/infrastructure/telemetry"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

//go:generate swag init -d ../.. -g cmd/api/main.go -o ../../docs

// @title           Service Order API
// @version         1.0
// @description     Service order (ordem de serviço) workflow for the mechanic shop, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.NewForEnvironment(os.Getenv("APP_ENV"), "info")
		fallback.Error("failed to load configuration", zap.Error(err))
		return 1
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}).
		With(zap.String("service", cfg.App.Name), zap.String("env", cfg.App.Env))
	defer func() { _ = log.Sync() }()

	shutdownTracing, err := telemetry.Setup(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.App.Name,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Error("failed to set up tracing", zap.Error(err))
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	if err := routes.Run(cfg, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return 1
	}
	return 0
}

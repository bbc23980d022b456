package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `validate:"required"`
	Log       LogConfig       `validate:"required"`
	DynamoDB  DynamoDBConfig  `validate:"required"`
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Env     string `validate:"required,oneof=development test production"`
	Port    string `validate:"required,numeric"`
	Version string
}

type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

// DynamoDBConfig points the service at its own tables and at the tables it
// reads from the catalog, inventory and registry contexts.
type DynamoDBConfig struct {
	Region          string `validate:"required"`
	Endpoint        string `validate:"omitempty,url"`
	AccessKeyID     string
	SecretAccessKey string
	AutoCreate      bool

	OrdersTable         string `validate:"required"`
	OrderCodesTable     string `validate:"required"`
	ServicesTable       string `validate:"required"`
	InventoryItemsTable string `validate:"required"`
	VehiclesTable       string `validate:"required"`
	CustomersTable      string `validate:"required"`
}

type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string  `validate:"required_if=Enabled true"`
	SamplingRatio     float64 `validate:"gte=0,lte=1"`
	Insecure          bool
}

// env var names per key. Kept compatible with the names used by the other
// mechanic-shop services (AWS_REGION, DYNAMODB_ENDPOINT, *_TABLE).
var envKeys = map[string]string{
	"app.name":    "APP_NAME",
	"app.env":     "APP_ENV",
	"app.port":    "PORT",
	"app.version": "APP_VERSION",

	"log.level":  "LOG_LEVEL",
	"log.format": "LOG_FORMAT",

	"dynamodb.region":                "AWS_REGION",
	"dynamodb.endpoint":              "DYNAMODB_ENDPOINT",
	"dynamodb.access_key_id":         "AWS_ACCESS_KEY_ID",
	"dynamodb.secret_access_key":     "AWS_SECRET_ACCESS_KEY",
	"dynamodb.auto_create":           "DYNAMODB_AUTO_CREATE_TABLES",
	"dynamodb.orders_table":          "ORDERS_TABLE",
	"dynamodb.order_codes_table":     "ORDER_CODES_TABLE",
	"dynamodb.services_table":        "SERVICES_TABLE",
	"dynamodb.inventory_items_table": "INVENTORY_ITEMS_TABLE",
	"dynamodb.vehicles_table":        "VEHICLES_TABLE",
	"dynamodb.customers_table":       "CUSTOMERS_TABLE",

	"telemetry.enabled":            "OTEL_ENABLED",
	"telemetry.collector_endpoint": "OTEL_EXPORTER_OTLP_ENDPOINT",
	"telemetry.sampling_ratio":     "OTEL_SAMPLING_RATIO",
	"telemetry.insecure":           "OTEL_INSECURE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "os-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.version", "dev")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.auto_create", false)
	v.SetDefault("dynamodb.orders_table", "service_orders")
	v.SetDefault("dynamodb.order_codes_table", "service_order_codes")
	v.SetDefault("dynamodb.services_table", "services")
	v.SetDefault("dynamodb.inventory_items_table", "inventory_items")
	v.SetDefault("dynamodb.vehicles_table", "vehicles")
	v.SetDefault("dynamodb.customers_table", "customers")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.collector_endpoint", "localhost:4317")
	v.SetDefault("telemetry.sampling_ratio", 1.0)
	v.SetDefault("telemetry.insecure", true)
}

// Load reads configuration from the environment (a .env file, when present,
// is loaded into the environment beforehand by godotenv).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Env:     v.GetString("app.env"),
			Port:    v.GetString("app.port"),
			Version: v.GetString("app.version"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		DynamoDB: DynamoDBConfig{
			Region:              v.GetString("dynamodb.region"),
			Endpoint:            v.GetString("dynamodb.endpoint"),
			AccessKeyID:         v.GetString("dynamodb.access_key_id"),
			SecretAccessKey:     v.GetString("dynamodb.secret_access_key"),
			AutoCreate:          v.GetBool("dynamodb.auto_create"),
			OrdersTable:         v.GetString("dynamodb.orders_table"),
			OrderCodesTable:     v.GetString("dynamodb.order_codes_table"),
			ServicesTable:       v.GetString("dynamodb.services_table"),
			InventoryItemsTable: v.GetString("dynamodb.inventory_items_table"),
			VehiclesTable:       v.GetString("dynamodb.vehicles_table"),
			CustomersTable:      v.GetString("dynamodb.customers_table"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) IsProduction() bool {
	return c.App.Env == "production"
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, env := range envKeys {
		t.Setenv(env, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.Equal(t, "service_orders", cfg.DynamoDB.OrdersTable)
	assert.Equal(t, "service_order_codes", cfg.DynamoDB.OrderCodesTable)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("ORDERS_TABLE", "orders_v2")
	t.Setenv("OTEL_SAMPLING_RATIO", "0.25")

	cfg, err := Load()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	assert.Equal(t, "orders_v2", cfg.DynamoDB.OrdersTable)
	assert.InDelta(t, 0.25, cfg.Telemetry.SamplingRatio, 1e-9)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown env", "APP_ENV", "staging"},
		{"non numeric port", "PORT", "http"},
		{"bad endpoint", "DYNAMODB_ENDPOINT", "not a url"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"sampling ratio above one", "OTEL_SAMPLING_RATIO", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

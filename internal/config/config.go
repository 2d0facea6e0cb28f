package config

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	ShippingFee     decimal.Decimal
	LogLevel        string
	LogDevelopment  bool
	SeedDemo        bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
// Malformed values fall back to the default.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":9091"),
		ShutdownTimeout: envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 5*time.Second),
		ShippingFee:     envDecimal("SHIPPING_FEE", decimal.NewFromInt(10)),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogDevelopment:  envBool("LOG_DEVELOPMENT", false),
		SeedDemo:        envBool("SEED_DEMO", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := cast.ToIntE(v)
		if err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := cast.ToBoolE(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err == nil && !d.IsNegative() {
			return d
		}
	}
	return def
}

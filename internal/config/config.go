package config

import (
	"fmt"

	pkgconfig "github.com/indrajewels/storefront/pkg/config"
)

// Cart store backends.
const (
	CartStoreMemory = "memory"
	CartStoreRedis  = "redis"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Cart store backend: memory (default) or redis.
	CartStore string `env:"CART_STORE" envDefault:"memory"`

	// Redis, used when CART_STORE=redis.
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Cart TTL in hours (default: 7 days). Zero disables expiry.
	CartTTLHours int `env:"CART_TTL_HOURS" envDefault:"168"`

	// Simulated payment processing delay at checkout, in milliseconds.
	CheckoutDelayMS int `env:"CHECKOUT_DELAY_MS" envDefault:"1000"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"" envSeparator:","`

	// Pprof debug endpoint allowlist.
	PprofCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"127.0.0.1/32" envSeparator:","`

	// Tracing
	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TraceSampleRate float64 `env:"TRACE_SAMPLE_RATE" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.CartStore != CartStoreMemory && c.CartStore != CartStoreRedis {
		return fmt.Errorf("invalid cart store %q: must be %q or %q", c.CartStore, CartStoreMemory, CartStoreRedis)
	}
	if c.CartTTLHours < 0 {
		return fmt.Errorf("cart TTL must not be negative: %d", c.CartTTLHours)
	}
	if c.CheckoutDelayMS < 0 {
		return fmt.Errorf("checkout delay must not be negative: %d", c.CheckoutDelayMS)
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("trace sample rate must be in [0, 1]: %f", c.TraceSampleRate)
	}
	return nil
}

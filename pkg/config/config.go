package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Retail  RetailConfig
	Metrics MetricsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPPOINT_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPPOINT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPPOINT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPPOINT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPPOINT_REDIS_URL"`
	Address      string        `envconfig:"SHOPPOINT_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPPOINT_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPPOINT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPPOINT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPPOINT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPPOINT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPPOINT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPPOINT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured. Idempotency replay
// protection is skipped when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPPOINT_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type RetailConfig struct {
	Currency         string        `envconfig:"SHOPPOINT_CURRENCY" default:"GHS"`
	IdempotencyTTL   time.Duration `envconfig:"SHOPPOINT_IDEMPOTENCY_TTL" default:"24h"`
	CheckoutIdemTTL  time.Duration `envconfig:"SHOPPOINT_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
	ReceiptPrefix    string        `envconfig:"SHOPPOINT_RECEIPT_PREFIX" default:"RCPT"`
	DefaultWarehouse string        `envconfig:"SHOPPOINT_DEFAULT_WAREHOUSE_ID"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"SHOPPOINT_METRICS_ENABLED" default:"true"`
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection, etc.)
// - default: values common across all environments (rates, limits, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Inventory InventoryConfig
	Payment   PaymentConfig
	Currency  CurrencyConfig
	Notify    NotifyConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the booking store backend. The memory driver needs no
// DB_* variables and is meant for local runs and demos.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"happyhotel"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"happyhotel"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// InventoryConfig seeds the in-memory room catalog. Entries are
// "name:capacity" pairs.
type InventoryConfig struct {
	Rooms []string `envconfig:"INVENTORY_ROOMS" default:"Room 101:2,Room 102:2,Room 201:3,Suite 301:4"`
}

// PaymentConfig bounds what the stub processor accepts; charges above the
// limit are declined.
type PaymentConfig struct {
	ChargeLimit float64 `envconfig:"PAYMENT_CHARGE_LIMIT" default:"10000"`
}

// CurrencyConfig carries the local-to-reference exchange rate. A
// non-positive rate makes conversion fail with the rate-unavailable error.
type CurrencyConfig struct {
	ReferenceRate float64 `envconfig:"CURRENCY_REFERENCE_RATE" default:"0.8"`
}

type NotifyConfig struct {
	// Empty URL disables delivery and logs confirmations instead.
	WebhookURL string        `envconfig:"NOTIFY_WEBHOOK_URL" default:""`
	Timeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level: "error",
		},
		Inventory: InventoryConfig{
			Rooms: []string{"Room 101:2", "Room 102:3"},
		},
		Payment: PaymentConfig{
			ChargeLimit: 10000,
		},
		Currency: CurrencyConfig{
			ReferenceRate: 0.8,
		},
		Notify: NotifyConfig{
			Timeout: time.Second,
		},
	}
}

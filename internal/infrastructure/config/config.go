package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// AdminToken enables DELETE /v1/catalog/cache behind a bearer token.
	// Empty leaves the route unmounted.
	AdminToken string `env:"ADMIN_TOKEN"`

	Catalog  CatalogConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig
}

// CatalogConfig selects where courier and currency records are read from and
// how long a loaded snapshot is reused.
type CatalogConfig struct {
	Backend  string        `env:"CATALOG_BACKEND,   default=mongo"`
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=5m"`
	// VolumetricCurrencyID names the currency record whose value scales the
	// volumetric price. Empty disables the lookup and the rate defaults to 1.
	VolumetricCurrencyID string `env:"VOLUMETRIC_CURRENCY_ID"`
	BaseCurrency         string `env:"BASE_CURRENCY, default=LKR"`
}

type MongoConfig struct {
	URI                    string        `env:"MONGO_URI,                      default=mongodb://localhost:27017"`
	Database               string        `env:"MONGO_DB,                       default=shipping_rates"`
	AppName                string        `env:"MONGO_APP_NAME,                 default=shipping-rates"`
	MaxPoolSize            uint64        `env:"MONGO_MAX_POOL_SIZE"`
	ConnectTimeout         time.Duration `env:"MONGO_CONNECT_TIMEOUT,          default=10s"`
	ServerSelectionTimeout time.Duration `env:"MONGO_SERVER_SELECTION_TIMEOUT, default=5s"`
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL"`
}

// RedisConfig points at the catalog cache. The service runs uncached when
// Redis is unreachable at startup.
type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,         default=localhost:6379"`
	Username    string        `env:"REDIS_USERNAME"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB,           default=0"`
	PoolSize    int           `env:"REDIS_POOL_SIZE"`
	TLS         bool          `env:"REDIS_TLS,          default=false"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Catalog.Backend = strings.ToLower(strings.TrimSpace(c.Catalog.Backend))
	switch c.Catalog.Backend {
	case BackendMongo:
	case BackendPostgres:
		if strings.TrimSpace(c.Postgres.URL) == "" {
			return fmt.Errorf("DATABASE_URL is required when CATALOG_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown CATALOG_BACKEND %q", c.Catalog.Backend)
	}
	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must not be negative")
	}
	if c.Redis.PoolSize < 0 {
		return fmt.Errorf("REDIS_POOL_SIZE must not be negative")
	}
	c.Catalog.BaseCurrency = strings.ToUpper(strings.TrimSpace(c.Catalog.BaseCurrency))
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

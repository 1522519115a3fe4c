package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config holds all configuration for the inventory service.
type Config struct {
	ServiceName string          `mapstructure:"service_name"`
	HTTP        HTTPConfig      `mapstructure:"http"`
	Log         LogConfig       `mapstructure:"log"`
	Storage     StorageConfig   `mapstructure:"storage"`
	Postgres    PostgresConfig  `mapstructure:"postgres"`
	Redis       RedisConfig     `mapstructure:"redis"`
	RateLimit   RateLimitConfig `mapstructure:"ratelimit"`
	Auth        AuthConfig      `mapstructure:"auth"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Enable it only behind a proxy that overwrites them.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the inventory backend of each resource family.
type StorageConfig struct {
	Products string `mapstructure:"products"`
	Records  string `mapstructure:"records"`
}

type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig configures the per-client token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// AuthConfig enables bearer token checks on mutating routes when Secret is set.
// Users maps a username to its bcrypt password hash. Viper lowercases map
// keys, so usernames are case-insensitive.
type AuthConfig struct {
	Secret   string            `mapstructure:"secret"`
	TokenTTL time.Duration     `mapstructure:"token_ttl"`
	Users    map[string]string `mapstructure:"users"`
}

func (a AuthConfig) Enabled() bool {
	return a.Secret != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service_name", "inventory-rest")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.trust_proxy_headers", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.products", StorageMemory)
	v.SetDefault("storage.records", StorageMemory)
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
}

// Load reads configuration from the optional YAML file at path, then applies
// INVENTORY_* environment overrides (e.g. INVENTORY_HTTP_ADDR).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Postgres.DSN == "" {
		cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Products {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unsupported products storage %q", c.Storage.Products)
	}
	switch c.Storage.Records {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unsupported records storage %q", c.Storage.Records)
	}
	if c.Storage.Products == StoragePostgres && c.Postgres.DSN == "" {
		return errors.New("postgres storage selected but no DSN configured")
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	// StoreDriver selects the tenant store. memory is for local development only.
	StoreDriver string `mapstructure:"STORE_DRIVER" validate:"required,oneof=postgres memory"`
	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required_if=StoreDriver postgres"`

	RedisAddr     string        `mapstructure:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`

	AsynqConcurrency int `mapstructure:"ASYNQ_CONCURRENCY" validate:"gte=1,lte=1000"`

	GoMaxProcs int `mapstructure:"GOMAXPROCS" validate:"gte=0,lte=4096"`

	// Tenant routing.
	RootDomain      string   `mapstructure:"ROOT_DOMAIN" validate:"required"`
	LocalRootDomain string   `mapstructure:"LOCAL_ROOT_DOMAIN" validate:"required"`
	BareHosts       []string `mapstructure:"BARE_HOSTS"`

	BackendURL     string        `mapstructure:"BACKEND_URL"`
	BackendTimeout time.Duration `mapstructure:"BACKEND_TIMEOUT" validate:"required"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
	DiagKey   string `mapstructure:"DIAG_KEY"`

	ScriptsDir    string        `mapstructure:"SCRIPTS_DIR" validate:"required"`
	PythonBin     string        `mapstructure:"PYTHON_BIN" validate:"required"`
	ScriptTimeout time.Duration `mapstructure:"SCRIPT_TIMEOUT" validate:"required"`

	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
}

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())
)

var keys = []string{
	"APP_ENV",
	"HTTP_ADDR",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"STORE_DRIVER",
	"DATABASE_URL",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"CACHE_TTL",
	"ASYNQ_CONCURRENCY",
	"GOMAXPROCS",
	"ROOT_DOMAIN",
	"LOCAL_ROOT_DOMAIN",
	"BARE_HOSTS",
	"BACKEND_URL",
	"BACKEND_TIMEOUT",
	"JWT_SECRET",
	"DIAG_KEY",
	"SCRIPTS_DIR",
	"PYTHON_BIN",
	"SCRIPT_TIMEOUT",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"CORS_ORIGINS",
}

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// Load .env if present (non-fatal)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("ASYNQ_CONCURRENCY", 10)
	v.SetDefault("GOMAXPROCS", 0)
	v.SetDefault("ROOT_DOMAIN", "example.com")
	v.SetDefault("LOCAL_ROOT_DOMAIN", "localhost:3000")
	v.SetDefault("BARE_HOSTS", "localhost:3000")
	v.SetDefault("BACKEND_TIMEOUT", "60s")
	v.SetDefault("SCRIPTS_DIR", "inboxbench/execution")
	v.SetDefault("PYTHON_BIN", "python3")
	v.SetDefault("SCRIPT_TIMEOUT", "5m")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("CORS_ORIGINS", "*")

	// Optional config file
	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Durations may arrive as plain strings from env or yaml.
	durations := map[string]*time.Duration{
		"SHUTDOWN_TIMEOUT": &c.ShutdownTimeout,
		"CACHE_TTL":        &c.CacheTTL,
		"BACKEND_TIMEOUT":  &c.BackendTimeout,
		"SCRIPT_TIMEOUT":   &c.ScriptTimeout,
	}
	for key, dst := range durations {
		s := v.GetString(key)
		if s == "" {
			continue
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = d
	}

	c.BareHosts = listValue(v, "BARE_HOSTS")
	c.CORSOrigins = listValue(v, "CORS_ORIGINS")

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.GoMaxProcs > 0 {
		runtime.GOMAXPROCS(c.GoMaxProcs)
	}

	cfg = &c
	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}

// Debug reports whether verbose store logging should be enabled.
func (c *Config) Debug() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}

// listValue accepts both a comma separated env string and a yaml list.
func listValue(v *viper.Viper, key string) []string {
	if s := v.GetString(key); s != "" {
		return splitList(s)
	}
	return splitList(strings.Join(v.GetStringSlice(key), ","))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

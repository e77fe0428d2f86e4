package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SKILLSWAP"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv         = "SKILLSWAP_APP_ENV"
	EnvPort           = "SKILLSWAP_APP_PORT"
	EnvLogLevel       = "SKILLSWAP_LOG_LEVEL"
	EnvLatencyEnabled = "SKILLSWAP_LATENCY_ENABLED"
	EnvLatencyScale   = "SKILLSWAP_LATENCY_SCALE"
	EnvRedisURL       = "SKILLSWAP_REDIS_URL"
	EnvCalendarTZ     = "SKILLSWAP_CALENDAR_TIMEZONE"
	EnvCORSOrigins    = "SKILLSWAP_CORS_ALLOWED_ORIGINS"
)

type Config struct {
	App       AppConfig
	Latency   LatencyConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Calendar  CalendarConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Latency.Scale < 0 {
		return nil, fmt.Errorf("%s must not be negative", EnvLatencyScale)
	}
	if _, err := cfg.Calendar.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SKILLSWAP_APP_ENV" default:"dev"`
	Port         string `envconfig:"SKILLSWAP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SKILLSWAP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SKILLSWAP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// LatencyConfig drives the simulated backend delay applied by the record stores.
type LatencyConfig struct {
	Enabled bool    `envconfig:"SKILLSWAP_LATENCY_ENABLED" default:"true"`
	Scale   float64 `envconfig:"SKILLSWAP_LATENCY_SCALE" default:"1"`
}

// RedisConfig is optional; an empty URL and address disables idempotency and rate limiting.
type RedisConfig struct {
	URL          string        `envconfig:"SKILLSWAP_REDIS_URL"`
	Address      string        `envconfig:"SKILLSWAP_REDIS_ADDR"`
	Password     string        `envconfig:"SKILLSWAP_REDIS_PASSWORD"`
	DB           int           `envconfig:"SKILLSWAP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SKILLSWAP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SKILLSWAP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SKILLSWAP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SKILLSWAP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SKILLSWAP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SKILLSWAP_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type CalendarConfig struct {
	TimeZone string `envconfig:"SKILLSWAP_CALENDAR_TIMEZONE" default:"UTC"`
}

// Location resolves the configured calendar time zone.
func (c CalendarConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", EnvCalendarTZ, err)
	}
	return loc, nil
}

type RateLimitConfig struct {
	MessageWindow time.Duration `envconfig:"SKILLSWAP_RATE_LIMIT_MESSAGE_WINDOW" default:"1m"`
	MessageLimit  int           `envconfig:"SKILLSWAP_RATE_LIMIT_MESSAGE_LIMIT" default:"30"`
}

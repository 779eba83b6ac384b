package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Events    EventsConfig    `yaml:"events"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-Actor"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds requests per client IP on the /api routes.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	Requests        int           `yaml:"requests"         env:"RATE_LIMIT_REQUESTS"         env-default:"120"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// CacheConfig configures the Redis-backed dashboard summary cache.
// With Enabled=false the service computes the summary on every request.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"false"`
	Addr     string        `yaml:"addr"     env:"CACHE_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB       int           `yaml:"db"       env:"CACHE_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"30s"`
}

// EventsConfig configures the NATS publisher for pipeline events.
type EventsConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"EVENTS_ENABLED"        env-default:"false"`
	URL           string        `yaml:"url"            env:"EVENTS_NATS_URL"       env-default:"nats://localhost:4222"`
	SubjectPrefix string        `yaml:"subject_prefix" env:"EVENTS_SUBJECT_PREFIX" env-default:"hiring"`
	Timeout       time.Duration `yaml:"timeout"        env:"EVENTS_TIMEOUT"        env-default:"5s"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// TelemetryConfig configures OpenTelemetry tracing. An empty CollectorURL
// disables tracing entirely.
type TelemetryConfig struct {
	CollectorURL string  `yaml:"collector_url" env:"OTEL_COLLECTOR_URL"`
	ServiceName  string  `yaml:"service_name"  env:"OTEL_SERVICE_NAME"  env-default:"hiretrack"`
	Insecure     bool    `yaml:"insecure"      env:"OTEL_INSECURE"      env-default:"true"`
	SampleRatio  float64 `yaml:"sample_ratio"  env:"OTEL_SAMPLE_RATIO"  env-default:"1.0"`
}

// PipelineConfig holds hiring-pipeline business settings.
type PipelineConfig struct {
	// ActiveStatus is the posting status literal counted as active on the dashboard.
	ActiveStatus      string `yaml:"active_status"       env:"PIPELINE_ACTIVE_STATUS"       env-default:"Active"`
	MaxQueryLength    int    `yaml:"max_query_length"    env:"PIPELINE_MAX_QUERY_LENGTH"    env-default:"512"`
	ApplicationURLFmt string `yaml:"application_url_fmt" env:"PIPELINE_APPLICATION_URL_FMT" env-default:"https://apply.company.com/job/%d"`
}

// TracingEnabled reports whether a trace collector is configured.
func (c TelemetryConfig) TracingEnabled() bool {
	return strings.TrimSpace(c.CollectorURL) != ""
}

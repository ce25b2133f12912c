package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Authority  AuthorityConfig  `yaml:"authority"`
	Proxy      ProxyConfig      `yaml:"proxy"`
	Migrations MigrationsConfig `yaml:"migrations"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
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

// AuthConfig holds admin token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"authority-index"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// AuthorityConfig holds authority service settings.
type AuthorityConfig struct {
	MaxLabelLength       int  `yaml:"max_label_length"         env:"AUTHORITY_MAX_LABEL_LENGTH"    env-default:"500"`
	AllowDuplicates      bool `yaml:"allow_duplicates"         env:"AUTHORITY_ALLOW_DUPLICATES"    env-default:"false"`
	KeyBatchSize         int  `yaml:"key_batch_size"           env:"AUTHORITY_KEY_BATCH_SIZE"      env-default:"500"`
	RecomputeOnStart     bool `yaml:"recompute_on_start"       env:"AUTHORITY_RECOMPUTE_ON_START"  env-default:"false"`
	DefaultListLimit     int  `yaml:"default_list_limit"       env:"AUTHORITY_DEFAULT_LIST_LIMIT"  env-default:"50"`
	MaxMergeGroupsPerRun int  `yaml:"max_merge_groups_per_run" env:"AUTHORITY_MAX_MERGE_GROUPS"    env-default:"1000"`
}

// ProxyConfig controls how headers set by a front-end proxy are honoured.
type ProxyConfig struct {
	TrustForwardedHeaders bool   `yaml:"trust_forwarded_headers" env:"PROXY_TRUST_FORWARDED_HEADERS" env-default:"false"`
	TrustedProxiesRaw     string `yaml:"trusted_proxies"         env:"PROXY_TRUSTED_PROXIES"         env-default:""`
	BaseURL               string `yaml:"base_url"                env:"PROXY_BASE_URL"                env-default:""`

	// TrustedProxies is parsed from TrustedProxiesRaw during validation.
	TrustedProxies []string `yaml:"-" env:"-"`
}

// MigrationsConfig holds schema migration settings.
//
// Boolean defaults stay false: cleanenv applies env-default to any field at
// its zero value, so a "true" default could never be turned off from YAML.
type MigrationsConfig struct {
	// AutoMigrate applies pending migrations at server start without the
	// confirmation cmd/migrate asks for.
	AutoMigrate bool `yaml:"auto_migrate" env:"MIGRATIONS_AUTO_MIGRATE" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for public endpoints.
type RateLimitConfig struct {
	NormalizePerMinute int           `yaml:"normalize_per_minute" env:"RATE_LIMIT_NORMALIZE_PER_MINUTE" env-default:"600"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATE_LIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// IsTrustedProxy reports whether addr (host without port) may set forwarded headers.
// An empty trusted list trusts every peer.
func (p ProxyConfig) IsTrustedProxy(addr string) bool {
	if len(p.TrustedProxies) == 0 {
		return true
	}
	for _, t := range p.TrustedProxies {
		if strings.EqualFold(t, addr) {
			return true
		}
	}
	return false
}

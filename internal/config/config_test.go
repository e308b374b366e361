package config

import (
	"testing"
	"time"
)

func validLocal() Config {
	return Config{
		App:  AppConfig{Env: "local", Port: 8080},
		DB:   DBConfig{Host: "localhost", Port: 5432, User: "postgres", Password: "x", Name: "nodebird"},
		Auth: AuthConfig{JWTSecret: "secret"},
	}
}

func TestValidate_ReportsMissingRequired(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_ProductionRequiresSSLMode(t *testing.T) {
	c := validLocal()
	c.App.Env = "production"
	c.Auth.JWTSecret = "a-long-enough-production-secret"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for production without DB_SSLMODE")
	}
}

func TestValidate_ProductionRejectsShortSecret(t *testing.T) {
	c := validLocal()
	c.App.Env = "production"
	c.DB.SSLMode = "require"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for short JWT_SECRET in production")
	}
}

func TestValidate_LocalDefaults(t *testing.T) {
	c := validLocal()
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.DB.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable default, got %q", c.DB.SSLMode)
	}
	if c.Auth.JWTIssuer != "nodebird" {
		t.Fatalf("expected default issuer, got %q", c.Auth.JWTIssuer)
	}
	if c.Tenant.CacheTTL != 15*time.Second || c.Tenant.LookupTimeout != 3*time.Second {
		t.Fatalf("unexpected tenant defaults: %+v", c.Tenant)
	}
	if c.CacheEnabled() {
		t.Fatalf("expected cache disabled without REDIS_HOST")
	}
}

func TestValidate_RedisPortCheckedOnlyWhenEnabled(t *testing.T) {
	c := validLocal()
	c.Redis.Host = "localhost"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for redis host without port")
	}
}

func TestLoad_ReadsEnv(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_NAME", "n")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("JWT_ISSUER", "custom")
	t.Setenv("TENANT_CACHE_TTL", "10s")
	t.Setenv("DB_MAX_CONNS", "8")
	t.Setenv("REDIS_HOST", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTPAddr() != ":9090" {
		t.Fatalf("unexpected addr %q", c.HTTPAddr())
	}
	if c.Auth.JWTIssuer != "custom" || c.Tenant.CacheTTL != 10*time.Second || c.DB.MaxConns != 8 {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_NAME", "n")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("STORE_LOOKUP_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected duration parse error")
	}
}

func TestValidate_RejectsCacheTTLAboveCap(t *testing.T) {
	c := validLocal()
	c.Tenant.CacheTTL = time.Minute
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for TENANT_CACHE_TTL above cap")
	}
}

func TestValidate_RejectsNegativeMaxConns(t *testing.T) {
	c := validLocal()
	c.DB.MaxConns = -1
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for negative DB_MAX_CONNS")
	}
}

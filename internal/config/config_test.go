package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  jwt_issuer: "catalog-test"
  access_token_ttl: "1h"

import:
  chunk_size: 100

graphql:
  playground_enabled: true
  introspection_enabled: true
  complexity_limit: 200

log:
  level: "debug"
  format: "text"

storage:
  dir: "/tmp/media"
  base_url: "http://cdn.local/media"

rate_limit:
  enabled: true
  requests_per_minute: 120
  cleanup_interval: "1m"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}

	// Auth
	if cfg.Auth.JWTIssuer != "catalog-test" {
		t.Errorf("auth.jwt_issuer = %q", cfg.Auth.JWTIssuer)
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("auth.access_token_ttl = %v, want 1h", cfg.Auth.AccessTokenTTL)
	}

	// Import
	if cfg.Import.ChunkSize != 100 {
		t.Errorf("import.chunk_size = %d, want 100", cfg.Import.ChunkSize)
	}

	// GraphQL
	if !cfg.GraphQL.PlaygroundEnabled {
		t.Error("graphql.playground_enabled should be true")
	}
	if cfg.GraphQL.ComplexityLimit != 200 {
		t.Errorf("graphql.complexity_limit = %d, want 200", cfg.GraphQL.ComplexityLimit)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}

	// Storage
	if cfg.Storage.Dir != "/tmp/media" {
		t.Errorf("storage.dir = %q", cfg.Storage.Dir)
	}
	if cfg.Storage.BaseURL != "http://cdn.local/media" {
		t.Errorf("storage.base_url = %q", cfg.Storage.BaseURL)
	}

	// Rate limit
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("rate_limit.requests_per_minute = %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.CleanupInterval != time.Minute {
		t.Errorf("rate_limit.cleanup_interval = %v, want 1m", cfg.RateLimit.CleanupInterval)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)

	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("auth.access_token_ttl = %v, want 24h (default)", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Import.ChunkSize != 50 {
		t.Errorf("import.chunk_size = %d, want 50 (default)", cfg.Import.ChunkSize)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_JWTSecretTooShort(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidate_JWTSecretEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty JWT secret")
	}
}

func TestValidate_AccessTokenTTLZero(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.AccessTokenTTL = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero access token TTL")
	}
}

func TestValidate_UnknownLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestValidate_UnknownLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log format")
	}
}

func TestValidate_ImportChunkSizeZero(t *testing.T) {
	cfg := validConfig()
	cfg.Import.ChunkSize = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for ImportChunkSize = 0")
	}
}

func TestValidate_ImportChunkSizeTooLarge(t *testing.T) {
	cfg := validConfig()
	cfg.Import.ChunkSize = 1001

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for ImportChunkSize > 1000")
	}
}

func TestValidate_EmptyStorageDir(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Dir = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty storage dir")
	}
}

func TestValidate_RateLimitEnabledWithoutBudget(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.RequestsPerMinute = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero requests_per_minute")
	}
}

func TestValidate_RateLimitDisabledSkipsChecks(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.RequestsPerMinute = 0
	cfg.RateLimit.CleanupInterval = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error with rate limiting disabled: %v", err)
	}
}

func TestValidate_ChunkSizeBoundaries(t *testing.T) {
	cfg := validConfig()
	cfg.Import.ChunkSize = 1

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for lower boundary: %v", err)
	}

	cfg.Import.ChunkSize = 1000

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for upper boundary: %v", err)
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Auth: AuthConfig{
			JWTSecret:      "this-is-a-very-long-jwt-secret-for-testing-32+",
			JWTIssuer:      "catalog-test",
			AccessTokenTTL: time.Hour,
		},
		Import: ImportConfig{
			ChunkSize: 50,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Dir:     "./media",
			BaseURL: "/media",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 300,
			CleanupInterval:   5 * time.Minute,
		},
	}
}

package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/sku_upload/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("UPLOAD_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 30*time.Second || c.HTTP.WriteTimeout != 60*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 5*time.Second {
		t.Fatalf("HTTP.HandlerTimeout: want 5s, got %s", c.HTTP.HandlerTimeout)
	}
	if c.HTTP.MaxUploadBytes != 5<<20 {
		t.Fatalf("HTTP.MaxUploadBytes: want 5MiB, got %d", c.HTTP.MaxUploadBytes)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "sku-upload" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 || !c.Postgres.Migrate ||
		c.Postgres.ConnLifetime != time.Hour || c.Postgres.ConnIdle != 30*time.Minute {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Kafka
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.CartTopic != "cart-summaries" || c.Kafka.CompletionTopic != "upload-completions" ||
		c.Kafka.GroupID != "sku-upload" || c.Kafka.StartOffset != "last" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}
	if c.Kafka.ProcessTimeout != 5*time.Second || c.Kafka.RetryInitial != 1*time.Second || c.Kafka.RetryMax != 30*time.Second {
		t.Fatalf("Kafka timeouts wrong: %+v", c.Kafka)
	}

	// Cache / Redis
	if c.Cache.Capacity != 10000 || c.Cache.TTL != 2*time.Hour {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
	if c.Redis.Addr != "" || c.Redis.KeyTTL != 2*time.Hour {
		t.Fatalf("Redis defaults wrong: %+v", c.Redis)
	}

	// Remote
	if c.Remote.ValidationURL == "" || c.Remote.CartURL == "" || c.Remote.Timeout != 15*time.Second {
		t.Fatalf("Remote defaults wrong: %+v", c.Remote)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "UPLOAD_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_MAX_UPLOAD_BYTES", "1024")
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")
	t.Setenv(p+"_POSTGRES_MIGRATE", "false")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_CART_TOPIC", "carts-test")
	t.Setenv(p+"_KAFKA_COMPLETION_TOPIC", "done-test")
	t.Setenv(p+"_REDIS_ADDR", "redis:6379")
	t.Setenv(p+"_REDIS_DB", "3")
	t.Setenv(p+"_REMOTE_VALIDATION_URL", "http://validator.local")
	t.Setenv(p+"_REMOTE_CART_URL", "http://cart.local")
	t.Setenv(p+"_REMOTE_TIMEOUT", "750ms")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.MaxUploadBytes != 1024 {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.Migrate {
		t.Fatalf("Postgres.Migrate override wrong: %+v", c.Postgres)
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.CartTopic != "carts-test" || c.Kafka.CompletionTopic != "done-test" {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 3 {
		t.Fatalf("Redis overrides wrong: %+v", c.Redis)
	}
	if c.Remote.ValidationURL != "http://validator.local" || c.Remote.CartURL != "http://cart.local" ||
		c.Remote.Timeout != 750*time.Millisecond {
		t.Fatalf("Remote overrides wrong: %+v", c.Remote)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "UPLOAD_TEST_BAD"
	t.Setenv(p+"_REMOTE_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_PORT", "GRPC_PORT", "CHAT_MODEL", "CHAT_TIMEOUT", "KAFKA_BROKERS", "OPENAI_API_KEY",
		"GRPC_TLS_CERT_FILE", "GRPC_TLS_KEY_FILE", "CHAT_HISTORY_LIMIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8090", cfg.HTTPAddr())
	assert.Equal(t, ":9090", cfg.GRPCAddr())
	assert.Equal(t, "gpt-3.5-turbo", cfg.Chat.Model)
	assert.Equal(t, 10*time.Second, cfg.Chat.Timeout)
	assert.Equal(t, 800, cfg.Chat.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Chat.Temperature, 1e-9)
	assert.Equal(t, 10, cfg.Chat.HistoryLimit)
	assert.False(t, cfg.Chat.Enabled())
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.TLS.Enabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("CHAT_TIMEOUT", "3s")
	t.Setenv("CHAT_TEMPERATURE", "0.2")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("GRPC_REFLECTION", "false")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8181, cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.Chat.Timeout)
	assert.InDelta(t, 0.2, cfg.Chat.Temperature, 1e-9)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.GRPCReflection)
	assert.True(t, cfg.Chat.Enabled())
}

func TestLoad_DotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CHAT_MODEL=from-dotenv\nHTTP_PORT=7000\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "8282")
	t.Setenv("CHAT_MODEL", "")
	require.NoError(t, os.Unsetenv("CHAT_MODEL"))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8282, cfg.HTTPPort)
	assert.Equal(t, "from-dotenv", cfg.Chat.Model)
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPPort: 8090, GRPCPort: 9090, Chat: ChatConfig{Timeout: time.Second}}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"http port", func(c *Config) { c.HTTPPort = 0 }, "HTTP_PORT"},
		{"grpc port", func(c *Config) { c.GRPCPort = 70000 }, "GRPC_PORT"},
		{"timeout", func(c *Config) { c.Chat.Timeout = 0 }, "CHAT_TIMEOUT"},
		{"half tls", func(c *Config) { c.TLS.CertFile = "cert.pem" }, "GRPC_TLS_CERT_FILE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

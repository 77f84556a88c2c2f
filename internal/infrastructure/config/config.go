package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ChatConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	Timeout      time.Duration
	MaxTokens    int
	Temperature  float64
	HistoryLimit int
}

// Enabled reports whether an API key is configured.
func (c ChatConfig) Enabled() bool {
	return c.APIKey != ""
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// Enabled reports whether both the certificate and key are configured.
func (c TLSConfig) Enabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

type Config struct {
	GRPCPort       int
	HTTPPort       int
	LogLevel       string
	LogFormat      string
	CatalogFile    string
	RateLimit      int
	OTLPEndpoint   string
	GRPCReflection bool
	Chat           ChatConfig
	Kafka          KafkaConfig
	TLS            TLSConfig
	ServiceName    string
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are applied first without overriding variables that
// are already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		GRPCPort:       getEnvInt("GRPC_PORT", 9090),
		HTTPPort:       getEnvInt("HTTP_PORT", 8090),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		CatalogFile:    getEnv("CATALOG_FILE", ""),
		RateLimit:      getEnvInt("RATE_LIMIT", 50),
		OTLPEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		GRPCReflection: getEnvBool("GRPC_REFLECTION", true),
		Chat: ChatConfig{
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			Model:        getEnv("CHAT_MODEL", "gpt-3.5-turbo"),
			Timeout:      getEnvDuration("CHAT_TIMEOUT", 10*time.Second),
			MaxTokens:    getEnvInt("CHAT_MAX_TOKENS", 800),
			Temperature:  getEnvFloat("CHAT_TEMPERATURE", 0.7),
			HistoryLimit: getEnvInt("CHAT_HISTORY_LIMIT", 10),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "suhail-events"),
		},
		TLS: TLSConfig{
			CertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			KeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
		},
		ServiceName: "suhail",
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT %d out of range", c.HTTPPort))
	}
	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("GRPC_PORT %d out of range", c.GRPCPort))
	}
	if c.Chat.Timeout <= 0 {
		errs = append(errs, errors.New("CHAT_TIMEOUT must be positive"))
	}
	if c.Chat.HistoryLimit < 0 {
		errs = append(errs, errors.New("CHAT_HISTORY_LIMIT must not be negative"))
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
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

package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	Port int

	APIBaseURL  string
	HTTPTimeout time.Duration

	DBConfig struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		Schema   string
	}

	AllowSimulatedUser bool
	CORSOrigins        []string

	NotifyTimeout   time.Duration
	NotifyQueueSize int

	KafkaBrokerURL          string
	KafkaPaymentEventsTopic string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvAsInt("PORT", 8080)

	cfg.APIBaseURL = strings.TrimRight(getEnvOrDefault("PADRINO_API_URL", "http://localhost:5050/api"), "/")
	cfg.HTTPTimeout = getEnvAsDuration("PADRINO_HTTP_TIMEOUT", 30*time.Second)

	cfg.DBConfig.Host = getEnvOrDefault("BLUEPRINT_DB_HOST", "localhost")
	cfg.DBConfig.Port = getEnvAsInt("BLUEPRINT_DB_PORT", 5432)
	cfg.DBConfig.User = getEnvOrDefault("BLUEPRINT_DB_USERNAME", "postgres")
	cfg.DBConfig.Password = getEnvOrDefault("BLUEPRINT_DB_PASSWORD", "postgres")
	cfg.DBConfig.Name = getEnvOrDefault("BLUEPRINT_DB_DATABASE", "padrino")
	cfg.DBConfig.Schema = getEnvOrDefault("BLUEPRINT_DB_SCHEMA", "public")

	cfg.AllowSimulatedUser = getEnvAsBool("PADRINO_ALLOW_SIMULATED_USER", false)
	cfg.CORSOrigins = splitList(getEnvOrDefault("PADRINO_CORS_ORIGINS", "http://localhost:5173"))

	cfg.NotifyTimeout = getEnvAsDuration("PADRINO_NOTIFY_TIMEOUT", 5*time.Second)
	cfg.NotifyQueueSize = getEnvAsInt("PADRINO_NOTIFY_QUEUE", 64)

	cfg.KafkaBrokerURL = getEnvOrDefault("KAFKA_BROKER_URL", "")
	cfg.KafkaPaymentEventsTopic = getEnvOrDefault("KAFKA_PAYMENT_EVENTS_TOPIC", "padrino_payment_events")

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("PADRINO_API_URL must not be empty")
	}
	if cfg.NotifyQueueSize <= 0 {
		return nil, fmt.Errorf("PADRINO_NOTIFY_QUEUE must be positive, got %d", cfg.NotifyQueueSize)
	}

	return cfg, nil
}

func (c *Config) GetDBConnectionString() string {
	query := url.Values{}
	query.Set("sslmode", "disable")
	query.Set("search_path", c.DBConfig.Schema)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBConfig.User, c.DBConfig.Password),
		Host:     net.JoinHostPort(c.DBConfig.Host, strconv.Itoa(c.DBConfig.Port)),
		Path:     "/" + c.DBConfig.Name,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// GetKafkaBrokers returns nil when no broker is configured, which disables
// payment event publication.
func (c *Config) GetKafkaBrokers() []string {
	return splitList(c.KafkaBrokerURL)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnvOrDefault(key, strconv.FormatBool(defaultValue))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

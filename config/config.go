package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServicePort      string `validate:"required,numeric"`
	MetricsPort      string `validate:"omitempty,numeric"`
	LogLevel         string
	CORSAllowOrigins []string `validate:"min=1"`
	MongoDBConfig    MongoDBConfig
	KafkaConfig      KafkaConfig
	TracingConfig    TracingConfig
	GraphQLConfig    GraphQLConfig
}

func CreateNewConfig() (*Config, error) {
	godotenv.Load(".env")

	conf := Config{
		ServicePort:      getEnv("PORT", "5000"),
		MetricsPort:      os.Getenv("METRICS_PORT"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		MongoDBConfig: MongoDBConfig{
			URI:        os.Getenv("MONGODB_URI"),
			Database:   getEnv("MONGODB_DATABASE", "splot-ani"),
			Collection: getEnv("MONGODB_COLLECTION", "products"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	var err error
	conf.MongoDBConfig.HealthCheckInterval, err = time.ParseDuration(getEnv("HEALTH_CHECK_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HEALTH_CHECK_INTERVAL: %w", err)
	}

	conf.GraphQLConfig.DefaultLimit, err = getEnvInt("PRODUCTS_DEFAULT_LIMIT", 4)
	if err != nil {
		return nil, err
	}

	conf.GraphQLConfig.MaxLimit, err = getEnvInt("PRODUCTS_MAX_LIMIT", 100)
	if err != nil {
		return nil, err
	}

	conf.GraphQLConfig.MaxDepth, err = getEnvInt("GRAPHQL_MAX_DEPTH", 10)
	if err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		log.Error().Err(err).Str("component", "CreateNewConfig").Msg("")
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return parsed, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

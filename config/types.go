package config

import "time"

type MongoDBConfig struct {
	URI                 string        `validate:"required"`
	Database            string        `validate:"required"`
	Collection          string        `validate:"required"`
	HealthCheckInterval time.Duration `validate:"gt=0"`
}

type KafkaConfig struct {
	BrokerAddress string
	BrokerTopic   string
}

// Enabled reports whether product events should be published.
func (k KafkaConfig) Enabled() bool {
	return k.BrokerAddress != "" && k.BrokerTopic != ""
}

type TracingConfig struct {
	CollectorHost string
}

type GraphQLConfig struct {
	DefaultLimit int `validate:"min=1"`
	MaxLimit     int `validate:"gtefield=DefaultLimit"`
	MaxDepth     int `validate:"min=1"`
}

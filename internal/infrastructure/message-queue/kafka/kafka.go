package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/villagef/splot-ani-server/config"
)

type Producer struct {
	writer *kafka.Writer
}

func CreateKafkaProducer(config *config.Config) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
			Topic:                  config.KafkaConfig.BrokerTopic,
			Balancer:               &kafka.Hash{},
			MaxAttempts:            3,
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes one message keyed by key, so events for the same product
// land on the same partition.
func (p *Producer) Publish(ctx context.Context, key string, msg []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: msg,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

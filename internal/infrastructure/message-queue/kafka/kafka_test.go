package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/villagef/splot-ani-server/config"
)

func TestCreateKafkaProducer(t *testing.T) {
	producer := CreateKafkaProducer(&config.Config{
		KafkaConfig: config.KafkaConfig{BrokerAddress: "127.0.0.1:1", BrokerTopic: "products"},
	})
	t.Cleanup(func() { _ = producer.Close() })

	assert.Equal(t, "products", producer.writer.Topic)
	assert.Equal(t, "127.0.0.1:1", producer.writer.Addr.String())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, producer.Publish(ctx, "id", []byte(`{}`)))
}

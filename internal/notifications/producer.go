package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"seatwise/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes notification events. Implementations must be safe for
// concurrent use.
type Producer interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a synchronous Kafka producer for the given topic.
func NewKafkaProducer(brokers []string, topic string) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, event *Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		// Key by username so a user's events stay ordered within a partition.
		Key:   sarama.StringEncoder(event.Username),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.GetDefault().Debug("published notification event",
		slog.String("type", string(event.Type)),
		slog.String("username", event.Username),
		slog.Int64("partition", int64(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

type noopProducer struct{}

// NewNoopProducer returns a producer that drops every event. Used when the
// broker is disabled in config.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Publish(ctx context.Context, event *Event) error { return nil }

func (noopProducer) Close() error { return nil }

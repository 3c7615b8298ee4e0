package notifications

import (
	"context"
	"fmt"
	"time"

	"eventuraa/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer interface defines the contract for publishing notifications
type Producer interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

// ProducerConfig contains configuration for the Kafka notification producer
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

// DefaultProducerConfig returns a default producer configuration
func DefaultProducerConfig() *ProducerConfig {
	return &ProducerConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "booking-notifications",
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
	log      *logger.Logger
}

// NewKafkaProducer creates a sync producer wired for at-least-once delivery.
func NewKafkaProducer(config *ProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	// Hash partitioner keeps per-recipient ordering
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		config:   config,
		log:      logger.GetDefault(),
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, notification *Notification) error {
	messageBytes, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.config.Topic,
		Key:   sarama.StringEncoder(notification.PartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("notification_id"), Value: []byte(notification.ID.String())},
			{Key: []byte("notification_type"), Value: []byte(notification.Type)},
			{Key: []byte("created_at"), Value: []byte(notification.CreatedAt.Format(time.RFC3339))},
		},
		Timestamp: notification.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send notification to Kafka: %w", err)
	}

	p.log.InfoWithContext(ctx, "notification published", map[string]interface{}{
		"topic":     p.config.Topic,
		"partition": partition,
		"offset":    offset,
		"type":      string(notification.Type),
	})
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

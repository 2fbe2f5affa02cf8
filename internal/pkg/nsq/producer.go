package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Phuti24/Singleton-Payment-API/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and pings nsqd
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish JSON-encodes message and sends it to topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := Marshal(message)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// Marshal serializes a message body
func Marshal(message interface{}) ([]byte, error) {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return msgBytes, nil
}

// Ping checks that nsqd is reachable
func (p *Producer) Ping(ctx context.Context) error {
	return p.producer.Ping()
}

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"padrino-pay/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, event domain.PaymentEvent) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when brokers is empty.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) Publisher {
	if len(brokers) == 0 {
		logger.Info("No Kafka brokers configured, payment events disabled")
		return nopPublisher{}
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.PaymentEvent) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish payment event",
			zap.String("topic", p.topic),
			zap.String("kind", string(event.Kind)),
			zap.Error(err))
		return fmt.Errorf("failed to publish payment event: %w", err)
	}
	p.logger.Debug("Published payment event", zap.String("kind", string(event.Kind)), zap.String("reference", event.Reference))
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	return nil
}

// newMessage keys events by dog so a dog's events stay ordered in one partition.
func newMessage(event domain.PaymentEvent) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal payment event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.DogID, 10)),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
	}, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.PaymentEvent) error { return nil }

func (nopPublisher) Close() error { return nil }

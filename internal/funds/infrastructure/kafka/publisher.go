package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Lexv0lk/funds-service/internal/funds/domain"
	"github.com/segmentio/kafka-go"
)

const DefaultTopic = "money_moved"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes the event keyed by its transaction id, so events of one
// ledger transaction land on the same partition.
func (p *Publisher) Publish(ctx context.Context, event domain.MoneyMovedEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func buildMessage(event domain.MoneyMovedEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(event.Kind)},
		},
	}, nil
}

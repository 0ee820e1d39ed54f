package broker

import (
	"context"
	"log/slog"
)

// Message is one outbox job on its way to the broker.
type Message struct {
	ID    string
	Topic string
	Body  []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// LogPublisher stands in for the broker when none is configured. Messages are
// logged and counted as delivered.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(ctx context.Context, msg Message) error {
	slog.InfoContext(ctx, "broker disabled, message logged only",
		"component", "broker",
		"message_id", msg.ID,
		"topic", msg.Topic,
		"bytes", len(msg.Body))
	return nil
}

func (LogPublisher) Close() error { return nil }

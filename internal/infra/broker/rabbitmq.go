package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seat-hold-ticketing/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishNacked = errs.New("broker did not acknowledge message")

// RabbitPublisher publishes to a durable topic exchange with publisher
// confirms, routing by topic. The connection is opened lazily and dropped on
// any failure so the next publish reconnects.
type RabbitPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(url, exchange string) *RabbitPublisher {
	return &RabbitPublisher{url: url, exchange: exchange}
}

func (p *RabbitPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	dc, err := ch.PublishWithDeferredConfirmWithContext(ctx,
		p.exchange,
		msg.Topic,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Type:         msg.Topic,
			Timestamp:    time.Now().UTC(),
			Body:         msg.Body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "publish to broker")
	}

	acked, err := dc.WaitContext(ctx)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "wait for broker confirm")
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open broker channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare exchange %s", p.exchange)
	}
	if err := ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "enable publisher confirms")
	}

	slog.Info("broker connected", "component", "broker", "exchange", p.exchange)
	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *RabbitPublisher) reset() {
	if err := p.closeLocked(); err != nil {
		slog.Debug("closing broker connection", "component", "broker", "error", err)
	}
}

func (p *RabbitPublisher) closeLocked() error {
	var err error
	if p.ch != nil {
		err = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
		p.conn = nil
	}
	if errs.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}

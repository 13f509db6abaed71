package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airport-pps/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes boarding events to a durable topic exchange with the
// routing key passenger.boarded, so each downstream system binds its own queue.
type AMQPNotifier struct {
	url      string
	exchange string
	dial     func(url string, cfg amqp.Config) (*amqp.Connection, error)
}

const (
	defaultDialTimeout = 30 * time.Second
	defaultHeartbeat   = 10 * time.Second
)

func NewAMQPNotifier(url, exchange string) *AMQPNotifier {
	return &AMQPNotifier{url: url, exchange: exchange, dial: amqp.DialConfig}
}

func (n *AMQPNotifier) Publish(ctx context.Context, event domain.BoardingEvent) error {
	return domain.External("publish boarding event to amqp", n.publish(ctx, event))
}

func (n *AMQPNotifier) publish(ctx context.Context, event domain.BoardingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := n.connect(ctx)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer func() { _ = conn.Close() }()
	// Closing the connection unblocks channel setup once ctx is done.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.ExchangeDeclare(
		n.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}

	return ch.PublishWithContext(ctx,
		n.exchange,
		domain.BoardingSubject,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: event.BookingReference,
			MessageId:     event.EventID,
			Type:          domain.BoardingSubject,
			Timestamp:     event.BoardedAtUtc,
			Body:          body,
		},
	)
}

// connect dials the broker with the TCP connect and AMQP handshake bounded by
// the ctx deadline.
func (n *AMQPNotifier) connect(ctx context.Context) (*amqp.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	return n.dial(n.url, amqp.Config{
		Heartbeat: defaultHeartbeat,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}

var _ Notifier = (*AMQPNotifier)(nil)

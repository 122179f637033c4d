package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type Settings struct {
	URL      string
	Exchange string
	Queue    string
}

// Publisher sends signed snapshots to a durable direct exchange. The queue name is the routing key.
type Publisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	queue    string
}

func NewPublisher(settings Settings) (*Publisher, error) {
	conn, err := amqp091.Dial(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := setup(ch, settings.Exchange, settings.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: settings.Exchange,
		queue:    settings.Queue,
	}, nil
}

func setup(ch *amqp091.Channel, exchange, queue string) error {
	err := ch.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queue, queue, exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

func (p *Publisher) Publish(ctx context.Context, snapshot domain.Snapshot) error {
	body, err := NewSnapshotSignedMessage(snapshot).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		p.queue,    // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    snapshot.ID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish snapshot %s: %w", snapshot.ID, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("offer", snapshot.OfferID).
		Str("exchange", p.exchange).
		Str("queue", p.queue).
		Msg("published signed snapshot")
	return nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

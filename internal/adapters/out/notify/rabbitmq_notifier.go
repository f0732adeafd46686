package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"cargo/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ ports.Notifier = (*RabbitMQNotifier)(nil)

// amqpChannel is the part of *amqp.Channel the notifier uses.
type amqpChannel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// NotificationMessage is the JSON body queued for the delivery worker.
type NotificationMessage struct {
	Recipient string    `json:"recipient"`
	Text      string    `json:"text"`
	ParseMode string    `json:"parse_mode"`
	QueuedAt  time.Time `json:"queued_at"`
}

// RabbitMQNotifier queues messages on a durable queue for a separate
// delivery worker, using the default exchange.
type RabbitMQNotifier struct {
	conn    io.Closer
	channel amqpChannel
	queue   string
}

// DialRabbitMQNotifier connects to url and declares queue.
func DialRabbitMQNotifier(url, queue string) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	n, err := NewRabbitMQNotifier(ch, queue)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	n.conn = conn
	return n, nil
}

// NewRabbitMQNotifier declares queue on an open channel.
func NewRabbitMQNotifier(ch amqpChannel, queue string) (*RabbitMQNotifier, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &RabbitMQNotifier{channel: ch, queue: queue}, nil
}

func (n *RabbitMQNotifier) Send(ctx context.Context, recipient, text string) error {
	body, err := json.Marshal(NotificationMessage{
		Recipient: recipient,
		Text:      text,
		ParseMode: "HTML",
		QueuedAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return n.channel.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Close closes the channel and, when the notifier dialled it, the connection.
func (n *RabbitMQNotifier) Close() error {
	err := n.channel.Close()
	if n.conn != nil {
		err = errors.Join(err, n.conn.Close())
	}
	return err
}

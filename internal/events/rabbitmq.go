package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp.Channel the publisher uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher publishes status-change events to a durable fanout
// exchange with persistent delivery. It does not wait for broker confirms.
type RabbitMQPublisher struct {
	conn     io.Closer
	ch       amqpChannel
	exchange string
	logger   *slog.Logger

	// AMQP channels must not be used for concurrent publishes.
	mu sync.Mutex
}

var _ Publisher = (*RabbitMQPublisher)(nil)

// DialRabbitMQ connects to the broker at url, opens a channel and declares
// the exchange.
func DialRabbitMQ(url, exchange string, logger *slog.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	p, err := newRabbitMQPublisher(conn, ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func newRabbitMQPublisher(
	conn io.Closer,
	ch amqpChannel,
	exchange string,
	logger *slog.Logger,
) (*RabbitMQPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &RabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger: logger.With(
			slog.String("component", "rabbitmq_publisher"),
			slog.String("exchange", exchange),
		),
	}, nil
}

// PublishStatusChanged implements Publisher.
func (p *RabbitMQPublisher) PublishStatusChanged(ctx context.Context, taskID int64, newStatus string) error {
	body, err := TaskStatusChanged{TaskID: taskID, NewStatus: newStatus}.Encode()
	if err != nil {
		return fmt.Errorf("encode status change: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         StatusChangedRoutingKey,
		Body:         body,
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, p.exchange, StatusChangedRoutingKey, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		p.logger.Error("failed to publish status change",
			slog.Int64("task_id", taskID),
			slog.String("new_status", newStatus),
			slog.String("error", err.Error()))
		return fmt.Errorf("publish status change for task %d: %w", taskID, err)
	}

	p.logger.Debug("published status change",
		slog.Int64("task_id", taskID),
		slog.String("new_status", newStatus),
		slog.String("message_id", msg.MessageId))
	return nil
}

// Close closes the channel and then the connection.
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.ch.Close(), p.conn.Close())
}

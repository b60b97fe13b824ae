package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is the topic exchange pipeline events are published to.
const DefaultExchange = "tpctools.events"

// AMQPEmitter publishes events as JSON to a topic exchange, using the event
// name as routing key. Publish failures are logged and dropped.
type AMQPEmitter struct {
	conn     *amqp.Connection
	mu       sync.Mutex // guards ch
	ch       *amqp.Channel
	exchange string
	log      *slog.Logger
}

// NewAMQPEmitter dials url and declares a durable topic exchange.
func NewAMQPEmitter(url, exchange string, log *slog.Logger) (*AMQPEmitter, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if log == nil {
		log = slog.Default()
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPEmitter{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

func (e *AMQPEmitter) Emit(ctx context.Context, event string, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		e.log.Warn("encode event", "event", event, "error", err)
		return
	}
	msg := amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Type:        event,
		Body:        body,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.ch.PublishWithContext(ctx, e.exchange, event, false, false, msg); err != nil {
		e.log.Warn("publish event", "event", event, "exchange", e.exchange, "error", err)
	}
}

// Close closes the channel and the connection.
func (e *AMQPEmitter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	chErr := e.ch.Close()
	if err := e.conn.Close(); err != nil {
		return err
	}
	return chErr
}

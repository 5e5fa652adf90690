package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
)

// Defaults for the task tracker event topology.
const (
	DefaultExchange = "tasktracker.events"
	DefaultQueue    = "task_events"
	DefaultBinding  = "#"
)

// ErrChannelClosed is returned when the client has no open channel.
var ErrChannelClosed = errors.New("RabbitMQ channel is not available")

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex
}

// Config holds RabbitMQ connection details and the event topology.
type Config struct {
	URL        string
	Exchange   string
	Queue      string
	BindingKey string
}

func (c *Config) setDefaults() {
	if c.Exchange == "" {
		c.Exchange = DefaultExchange
	}
	if c.Queue == "" {
		c.Queue = DefaultQueue
	}
	if c.BindingKey == "" {
		c.BindingKey = DefaultBinding
	}
}

// NewClient connects to RabbitMQ, opens a channel and declares a durable
// topic exchange with a queue bound to it.
func NewClient(cfg Config) (*Client, error) {
	cfg.setDefaults()

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	slog.Info("RabbitMQ client connected",
		"exchange", cfg.Exchange,
		"queue", cfg.Queue)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg Config) error {
	err := ch.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // kind
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", cfg.Queue, err)
	}

	if err := ch.QueueBind(cfg.Queue, cfg.BindingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue %s: %w", cfg.Queue, err)
	}
	return nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
		c.conn = nil
	}
	return errors.Join(errs...)
}

// Publish sends a persistent JSON message to exchange with routingKey.
func (c *Client) Publish(exchange, routingKey string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel == nil {
		return ErrChannelClosed
	}

	err := c.channel.Publish(
		exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	slog.Debug("event published", "exchange", exchange, "routing_key", routingKey)
	return nil
}

// ConsumeEvents starts a goroutine delivering messages from the event queue
// to handler. Messages are acked when handler returns nil and rejected
// without requeue otherwise.
func (c *Client) ConsumeEvents(handler func(msg amqp.Delivery) error) error {
	c.mu.Lock()
	ch := c.channel
	c.mu.Unlock()
	if ch == nil {
		return ErrChannelClosed
	}

	msgs, err := ch.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	slog.Info("waiting for task tracker events", "queue", c.queue)

	go func() {
		for msg := range msgs {
			settle(msg, handler(msg))
		}
		slog.Info("event consumer stopped", "queue", c.queue)
	}()
	return nil
}

// acknowledger is the part of amqp.Delivery used to settle a message.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func settle(msg amqp.Delivery, handlerErr error) {
	if err := settleWith(msg, handlerErr); err != nil {
		slog.Error("failed to settle message", "delivery_tag", msg.DeliveryTag, "error", err)
	}
}

func settleWith(ack acknowledger, handlerErr error) error {
	if handlerErr != nil {
		slog.Warn("rejecting event", "error", handlerErr)
		return ack.Nack(false, false)
	}
	return ack.Ack(false)
}

// Event mirrors the JSON body of a published domain event.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	TaskID     string    `json:"task_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LogEvents returns a handler that decodes each event and writes it to l.
func LogEvents(l *slog.Logger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var ev Event
		if err := json.Unmarshal(msg.Body, &ev); err != nil {
			return fmt.Errorf("failed to decode event %q: %w", msg.RoutingKey, err)
		}
		l.Info("event received",
			"type", ev.Type,
			"routing_key", msg.RoutingKey,
			"user_id", ev.UserID,
			"task_id", ev.TaskID,
			"occurred_at", ev.OccurredAt)
		return nil
	}
}

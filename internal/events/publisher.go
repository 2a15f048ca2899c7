// AngelaMos | 2026
// publisher.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/carterperez-dev/templates/inventory-api/internal/config"
)

var (
	ErrPublisherClosed      = errors.New("publisher closed")
	ErrPublisherUnavailable = errors.New("publisher unavailable")
)

const defaultDialTimeout = 2 * time.Second

// AMQPPublisher publishes JSON events to a durable topic exchange. The
// connection is opened at construction. After a broker disconnect, Publish
// fails fast with ErrPublisherUnavailable while a single background
// goroutine re-dials.
type AMQPPublisher struct {
	url         string
	exchange    string
	dialTimeout time.Duration
	logger      *slog.Logger

	mu           sync.Mutex
	conn         *amqp.Connection
	ch           *amqp.Channel
	closed       bool
	reconnecting bool
	wg           sync.WaitGroup
}

func NewAMQPPublisher(
	cfg config.EventsConfig,
	logger *slog.Logger,
) (*AMQPPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := &AMQPPublisher{
		url:         cfg.URL,
		exchange:    cfg.Exchange,
		dialTimeout: cfg.DialTimeout,
		logger:      logger,
	}
	if p.dialTimeout <= 0 {
		p.dialTimeout = defaultDialTimeout
	}

	conn, ch, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.conn = conn
	p.ch = ch

	return p, nil
}

// dial bounds both the TCP connect and the AMQP handshake by dialTimeout.
func (p *AMQPPublisher) dial() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // cleanup on channel failure
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		p.exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = conn.Close() //nolint:errcheck // cleanup on declare failure
		return nil, nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	return conn, ch, nil
}

func (p *AMQPPublisher) Publish(
	ctx context.Context,
	routingKey string,
	event any,
) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if p.ch == nil || p.ch.IsClosed() {
		p.startReconnectLocked()
		return fmt.Errorf("publish %s: %w", routingKey, ErrPublisherUnavailable)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	return nil
}

// startReconnectLocked must be called with p.mu held.
func (p *AMQPPublisher) startReconnectLocked() {
	if p.reconnecting {
		return
	}
	p.reconnecting = true

	if p.conn != nil {
		_ = p.conn.Close() //nolint:errcheck // replacing a dead connection
	}
	p.conn = nil
	p.ch = nil

	p.wg.Add(1)
	go p.reconnect()
}

func (p *AMQPPublisher) reconnect() {
	defer p.wg.Done()

	conn, ch, err := p.dial()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.reconnecting = false

	if err != nil {
		p.logger.Warn("event publisher reconnect failed",
			"exchange", p.exchange,
			"error", err,
		)
		return
	}

	if p.closed {
		_ = conn.Close() //nolint:errcheck // publisher closed while dialing
		return
	}

	p.conn = conn
	p.ch = ch
	p.logger.Info("event publisher reconnected", "exchange", p.exchange)
}

// Close waits for an in-flight reconnect, which is bounded by dialTimeout.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	conn := p.conn
	p.conn = nil
	p.ch = nil
	p.mu.Unlock()

	p.wg.Wait()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// LogPublisher writes events to the structured log. It is used when no
// broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(
	ctx context.Context,
	routingKey string,
	event any,
) error {
	p.logger.InfoContext(ctx, "domain event",
		"routing_key", routingKey,
		"event", event,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// Emit publishes without failing the caller: the ledger mutation has
// already happened, so a delivery failure is logged and dropped.
func Emit(ctx context.Context, pub Publisher, routingKey string, event any) {
	if pub == nil {
		return
	}

	if err := pub.Publish(ctx, routingKey, event); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			"routing_key", routingKey,
			"error", err,
		)
	}
}

var (
	_ Publisher = (*AMQPPublisher)(nil)
	_ Publisher = (*LogPublisher)(nil)
)

package amqp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"finance-analytics/internal/config"
	"finance-analytics/internal/models"
	"finance-analytics/internal/services"

	"github.com/rabbitmq/amqp091-go"
)

const (
	publishTimeout     = 5 * time.Second
	maxPublishAttempts = 3
	maxBackoff         = 30 * time.Second
)

// channel is the subset of *amqp091.Channel used by the publisher
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type connectFunc func() (io.Closer, channel, error)

// Publisher sends budget alerts to a direct exchange. It satisfies
// services.AlertNotifierInterface and reconnects when the broker drops.
type Publisher struct {
	mu         sync.Mutex
	conn       io.Closer
	channel    channel
	generation uint64 // bumped on every successful reconnect
	connect    connectFunc
	exchange   string
	routingKey string
	queue      string
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
}

var _ services.AlertNotifierInterface = (*Publisher)(nil)

// NewPublisher dials the broker and declares the exchange, queue and binding
func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	return newPublisher(cfg, func() (io.Closer, channel, error) {
		conn, err := amqp091.Dial(cfg.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("dial AMQP: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open channel: %w", err)
		}

		return conn, ch, nil
	})
}

func newPublisher(cfg config.AMQPConfig, connect connectFunc) (*Publisher, error) {
	p := &Publisher{
		connect:    connect,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		queue:      cfg.Queue,
		now:        time.Now,
		sleep:      sleepContext,
	}

	if err := p.reconnect(); err != nil {
		return nil, err
	}

	return p, nil
}

// reconnect replaces the current connection. Callers hold p.mu or own p exclusively.
func (p *Publisher) reconnect() error {
	p.closeLocked()

	conn, ch, err := p.connect()
	if err != nil {
		return err
	}

	p.conn = conn
	p.channel = ch

	if err := p.setup(); err != nil {
		p.closeLocked()
		return fmt.Errorf("setup exchange and queue: %w", err)
	}

	p.generation++
	return nil
}

func (p *Publisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := p.channel.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.channel.QueueBind(p.queue, p.routingKey, p.exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// NotifyBudgetAlert publishes the alert as a persistent JSON message.
// Connection failures are retried with exponential backoff.
func (p *Publisher) NotifyBudgetAlert(ctx context.Context, alert *models.BudgetAlert) error {
	correlationID := services.CorrelationID(ctx)
	body, err := NewBudgetAlertMessage(alert, correlationID, p.now()).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp091.Persistent,
		Timestamp:     p.now(),
		CorrelationId: correlationID,
		Type:          BudgetAlertMessageType,
		Body:          body,
	}

	p.mu.Lock()
	seen := p.generation
	p.mu.Unlock()

	var lastErr error
	for attempt := 0; attempt < maxPublishAttempts; attempt++ {
		// The lock is not held while backing off.
		if attempt > 0 {
			if err := p.sleep(ctx, exponentialBackoff(attempt-1)); err != nil {
				return err
			}
		}

		seen, lastErr = p.attempt(ctx, publishing, attempt > 0, seen)
		if lastErr == nil {
			slog.InfoContext(ctx, "Published budget alert",
				"budget_id", alert.BudgetID,
				"threshold", alert.Threshold,
				"exchange", p.exchange,
				"routing_key", p.routingKey)
			return nil
		}

		if !isConnectionError(lastErr) {
			break
		}
	}

	return fmt.Errorf("publish budget alert: %w", lastErr)
}

// attempt publishes once. With retry set it first reconnects, unless another
// caller already replaced the connection seen by the failed attempt. It returns
// the connection generation the publish ran against.
func (p *Publisher) attempt(ctx context.Context, msg amqp091.Publishing, retry bool, seen uint64) (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if retry && p.generation == seen {
		if err := p.reconnect(); err != nil {
			slog.WarnContext(ctx, "AMQP reconnect failed", "error", err)
			return p.generation, fmt.Errorf("connection lost, reconnect failed: %w", err)
		}
	}

	if p.channel == nil {
		return p.generation, errors.New("channel/connection is not open")
	}

	return p.generation, p.publish(ctx, msg)
}

func (p *Publisher) publish(ctx context.Context, msg amqp091.Publishing) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, msg)
}

// Close releases the channel and connection
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Publisher) closeLocked() error {
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func exponentialBackoff(attempt int) time.Duration {
	if attempt >= 5 {
		return maxBackoff
	}
	backoff := time.Second << attempt
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, amqp091.ErrClosed) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"connection", "eof", "broken pipe", "channel/connection is not open"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

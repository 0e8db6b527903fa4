package broker

import (
	"context"
	"errors"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrDeliveriesClosed = errors.New("broker: deliveries channel closed")

// Consumer lê a fila de cadastros com auto-ack; eventos perdidos não voltam.
type Consumer struct {
	*session
	deliveries <-chan amqp.Delivery
	log        *slog.Logger
}

func NewConsumer(uri, queue, tag string, prefetch int, log *slog.Logger) (*Consumer, error) {
	if log == nil {
		log = slog.Default()
	}
	s, err := dial(uri, queue)
	if err != nil {
		return nil, err
	}
	if err := s.ch.Qos(prefetch, 0, false); err != nil {
		_ = s.Close()
		return nil, err
	}
	d, err := s.ch.Consume(queue, tag, true, false, false, false, nil)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	log.Info("rabbit_consumer_started", "queue", queue, "prefetch", prefetch)
	return &Consumer{session: s, deliveries: d, log: log}, nil
}

// Run entrega cada evento decodificado (e o corpo original) a fn até o ctx
// acabar ou o canal fechar. Corpos inválidos são descartados.
func (c *Consumer) Run(ctx context.Context, fn func(Event, []byte)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-c.deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			ev, err := DecodeEvent(d.Body)
			if err != nil || ev.Kind == "" {
				c.log.Warn("event_decode_failed", "err", err, "bytes", len(d.Body))
				continue
			}
			fn(ev, d.Body)
		}
	}
}

package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 2 * time.Second

// session é a conexão + canal com a fila de cadastros já declarada.
type session struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func dial(uri, queue string) (*session, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	s := &session{conn: conn, ch: ch, queue: queue}
	if err := DeclareQueue(ch, queue); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// DeclareQueue declara a fila durável; idempotente.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	return err
}

func (s *session) Close() error {
	var errCh, errConn error
	if s.ch != nil {
		errCh = s.ch.Close()
	}
	if s.conn != nil {
		errConn = s.conn.Close()
	}
	return errors.Join(errCh, errConn)
}

// Publisher envia um Event por cadastro criado.
type Publisher struct {
	*session
}

func NewPublisher(uri, queue string) (*Publisher, error) {
	s, err := dial(uri, queue)
	if err != nil {
		return nil, err
	}
	return &Publisher{session: s}, nil
}

func (p *Publisher) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// default exchange, routing key = fila
	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.Timestamp,
		Body:         body,
		Headers:      ev.headers(),
	})
}

// DecodeEvent lê o corpo publicado por Publish.
func DecodeEvent(body []byte) (Event, error) {
	var ev Event
	err := json.Unmarshal(body, &ev)
	return ev, err
}

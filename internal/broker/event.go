package broker

import (
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Event é publicado a cada cadastro e repassado ao websocket.
type Event struct {
	Action    string      `json:"action"` // cadastro
	Kind      models.Kind `json:"kind"`
	ID        string      `json:"id"`
	Nome      string      `json:"nome"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewCadastro(kind models.Kind, id, nome string) Event {
	return Event{
		Action:    "cadastro",
		Kind:      kind,
		ID:        id,
		Nome:      nome,
		Message:   fmt.Sprintf("Cadastro de %s %s", kind.Label(), nome),
		Timestamp: time.Now().UTC(),
	}
}

func (e Event) headers() amqp.Table {
	return amqp.Table{
		"action":    e.Action,
		"kind":      string(e.Kind),
		"id":        e.ID,
		"nome":      e.Nome,
		"timestamp": e.Timestamp.Format(time.RFC3339),
	}
}

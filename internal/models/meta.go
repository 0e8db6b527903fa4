package models

import "time"

// DateLayout é o formato das datas trafegadas (input type=date).
const DateLayout = "2006-01-02"

// Meta carrega os campos gerados pelo servidor em todo registro.
type Meta struct {
	ID        string    `bson:"_id" json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Key devolve o identificador; promovido para todas as entidades.
func (m Meta) Key() string { return m.ID }

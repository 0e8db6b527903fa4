package models

type RegistroPresencaInput struct {
	FuncionarioID string    `bson:"funcionario_id" json:"funcionario_id"`
	Data          string    `bson:"data" json:"data"`
	Presente      bool      `bson:"presente" json:"presente"`
	TipoFalta     TipoFalta `bson:"tipo_falta,omitempty" json:"tipo_falta,omitempty"`
	Observacoes   string    `bson:"observacoes" json:"observacoes"`
}

type RegistroPresenca struct {
	Meta                  `bson:",inline"`
	RegistroPresencaInput `bson:",inline"`
}

func (RegistroPresenca) TableName() string { return "registros_presenca" }

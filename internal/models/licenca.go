package models

type LicencaInput struct {
	FuncionarioID string      `bson:"funcionario_id" json:"funcionario_id"`
	Tipo          TipoLicenca `bson:"tipo" json:"tipo"`
	DataInicio    string      `bson:"data_inicio" json:"data_inicio"`
	DataFim       string      `bson:"data_fim" json:"data_fim"`
	Motivo        string      `bson:"motivo" json:"motivo"`
	Observacoes   string      `bson:"observacoes" json:"observacoes"`
}

type Licenca struct {
	Meta         `bson:",inline"`
	LicencaInput `bson:",inline"`
}

func (Licenca) TableName() string { return "licencas" }

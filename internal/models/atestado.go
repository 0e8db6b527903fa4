package models

type AtestadoInput struct {
	FuncionarioID       string `bson:"funcionario_id" json:"funcionario_id"`
	DataEmissao         string `bson:"data_emissao" json:"data_emissao"`
	CID                 string `bson:"cid" json:"cid"`
	DiasAfastamento     int    `bson:"dias_afastamento" json:"dias_afastamento"`
	DataRetornoPrevista string `bson:"data_retorno_prevista" json:"data_retorno_prevista"`
	Observacoes         string `bson:"observacoes" json:"observacoes"`
}

type Atestado struct {
	Meta          `bson:",inline"`
	AtestadoInput `bson:",inline"`
}

func (Atestado) TableName() string { return "atestados" }

// Ativo indica se o afastamento ainda vale em today (YYYY-MM-DD).
// Datas ISO comparam lexicograficamente.
func (a Atestado) Ativo(today string) bool {
	return a.DataRetornoPrevista >= today
}

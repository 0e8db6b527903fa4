package models

// EmpresaInput é o corpo aceito no POST /empresas.
type EmpresaInput struct {
	RazaoSocial        string `bson:"razao_social" json:"razao_social"`
	CNPJ               string `bson:"cnpj" json:"cnpj"`
	InscricaoMunicipal string `bson:"inscricao_municipal" json:"inscricao_municipal"`
	Logradouro         string `bson:"logradouro" json:"logradouro"`
	CEP                string `bson:"cep" json:"cep"`
	Cidade             string `bson:"cidade" json:"cidade"`
	Estado             string `bson:"estado" json:"estado"`
}

// Empresa empregadora (a prestadora que contrata os funcionários).
type Empresa struct {
	Meta         `bson:",inline"`
	EmpresaInput `bson:",inline"`
}

func (Empresa) TableName() string { return "empresas" }

package models

type ClienteInput struct {
	RazaoSocial        string      `bson:"razao_social" json:"razao_social"`
	CNPJ               string      `bson:"cnpj" json:"cnpj"`
	Logradouro         string      `bson:"logradouro" json:"logradouro"`
	CEP                string      `bson:"cep" json:"cep"`
	Cidade             string      `bson:"cidade" json:"cidade"`
	Estado             string      `bson:"estado" json:"estado"`
	AreaAtuacao        AreaAtuacao `bson:"area_atuacao" json:"area_atuacao"`
	ValorContrato      float64     `bson:"valor_contrato" json:"valor_contrato"`
	DescricaoServicos  string      `bson:"descricao_servicos" json:"descricao_servicos"`
	SindicoResponsavel string      `bson:"sindico_responsavel" json:"sindico_responsavel"`
}

// Cliente é o tomador do serviço terceirizado.
type Cliente struct {
	Meta         `bson:",inline"`
	ClienteInput `bson:",inline"`
}

func (Cliente) TableName() string { return "clientes" }

package models

type FuncaoInput struct {
	Nome      string `bson:"nome" json:"nome"`
	Descricao string `bson:"descricao" json:"descricao"`
	CBO       string `bson:"cbo" json:"cbo"`
}

type Funcao struct {
	Meta        `bson:",inline"`
	FuncaoInput `bson:",inline"`
}

func (Funcao) TableName() string { return "funcoes" }

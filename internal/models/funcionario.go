package models

type FuncionarioInput struct {
	Nome     string `bson:"nome" json:"nome"`
	Endereco string `bson:"endereco" json:"endereco"`
	Telefone string `bson:"telefone" json:"telefone"`
	Cidade   string `bson:"cidade" json:"cidade"`
	Estado   string `bson:"estado" json:"estado"`
	CEP      string `bson:"cep" json:"cep"`
	FuncaoID string `bson:"funcao_id" json:"funcao_id"`

	LocalNascimento  string `bson:"local_nascimento" json:"local_nascimento"`
	NomePai          string `bson:"nome_pai" json:"nome_pai"`
	NomeMae          string `bson:"nome_mae" json:"nome_mae"`
	MatriculaESocial string `bson:"matricula_esocial" json:"matricula_esocial"`
	CBO              string `bson:"cbo" json:"cbo"`

	RG               string `bson:"rg" json:"rg"`
	DataEmissaoRG    string `bson:"data_emissao_rg" json:"data_emissao_rg"`
	OrgaoEmissorRG   string `bson:"orgao_emissor_rg" json:"orgao_emissor_rg"`
	CPF              string `bson:"cpf" json:"cpf"`
	CTPS             string `bson:"ctps" json:"ctps"`
	DataEmissaoCTPS  string `bson:"data_emissao_ctps" json:"data_emissao_ctps"`
	OrgaoEmissorCTPS string `bson:"orgao_emissor_ctps" json:"orgao_emissor_ctps"`
	TituloEleitor    string `bson:"titulo_eleitor" json:"titulo_eleitor"`
	ZonaEleitoral    string `bson:"zona_eleitoral" json:"zona_eleitoral"`
	SecaoEleitoral   string `bson:"secao_eleitoral" json:"secao_eleitoral"`

	Escolaridade    Escolaridade `bson:"escolaridade" json:"escolaridade"`
	EstadoCivil     EstadoCivil  `bson:"estado_civil" json:"estado_civil"`
	Nacionalidade   string       `bson:"nacionalidade" json:"nacionalidade"`
	HorarioTrabalho string       `bson:"horario_trabalho" json:"horario_trabalho"`
	NumeroPIS       string       `bson:"numero_pis" json:"numero_pis"`

	Salario               float64 `bson:"salario" json:"salario"`
	EmpresaID             string  `bson:"empresa_id" json:"empresa_id"`
	DataAdmissao          string  `bson:"data_admissao" json:"data_admissao"`
	TemDependentes        bool    `bson:"tem_dependentes" json:"tem_dependentes"`
	QuantidadeDependentes int     `bson:"quantidade_dependentes" json:"quantidade_dependentes"`
	ClienteID             string  `bson:"cliente_id" json:"cliente_id"`
	PostoAlocacao         string  `bson:"posto_alocacao" json:"posto_alocacao"`
}

// Funcionario referencia Empresa, Cliente e Funcao apenas por id;
// a integridade não é verificada na gravação.
type Funcionario struct {
	Meta             `bson:",inline"`
	FuncionarioInput `bson:",inline"`
}

func (Funcionario) TableName() string { return "funcionarios" }

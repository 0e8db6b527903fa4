package forms

import (
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

type Empresa struct {
	RazaoSocial        string
	CNPJ               string
	InscricaoMunicipal string
	Logradouro         string
	CEP                string
	Cidade             string
	Estado             string
}

var empresaFields = []binding[Empresa]{
	{Field{Name: "razao_social", Label: "Razão Social", Required: true}, func(d *Empresa) *string { return &d.RazaoSocial }},
	{Field{Name: "cnpj", Label: "CNPJ", Required: true}, func(d *Empresa) *string { return &d.CNPJ }},
	{Field{Name: "inscricao_municipal", Label: "Inscrição Municipal"}, func(d *Empresa) *string { return &d.InscricaoMunicipal }},
	{Field{Name: "logradouro", Label: "Endereço", Required: true}, func(d *Empresa) *string { return &d.Logradouro }},
	{Field{Name: "cep", Label: "CEP", Required: true}, func(d *Empresa) *string { return &d.CEP }},
	{Field{Name: "cidade", Label: "Cidade", Required: true}, func(d *Empresa) *string { return &d.Cidade }},
	{Field{Name: "estado", Label: "Estado", Required: true}, func(d *Empresa) *string { return &d.Estado }},
}

func (Empresa) Kind() models.Kind { return models.KindEmpresa }
func (d Empresa) Set(field, value string) (Draft, error) {
	return set(d, empresaFields, field, value)
}
func (d Empresa) Get(field string) string { return get(d, empresaFields, field) }
func (Empresa) Fields() []Field           { return fields(empresaFields) }
func (d Empresa) Validate() error         { return validate(d, empresaFields) }

func (d Empresa) Payload() any {
	return models.EmpresaInput{
		RazaoSocial:        d.RazaoSocial,
		CNPJ:               d.CNPJ,
		InscricaoMunicipal: d.InscricaoMunicipal,
		Logradouro:         d.Logradouro,
		CEP:                d.CEP,
		Cidade:             d.Cidade,
		Estado:             d.Estado,
	}
}

type Cliente struct {
	RazaoSocial        string
	CNPJ               string
	Logradouro         string
	CEP                string
	Cidade             string
	Estado             string
	AreaAtuacao        string
	ValorContrato      string
	DescricaoServicos  string
	SindicoResponsavel string
}

var clienteFields = []binding[Cliente]{
	{Field{Name: "razao_social", Label: "Razão Social", Required: true}, func(d *Cliente) *string { return &d.RazaoSocial }},
	{Field{Name: "cnpj", Label: "CNPJ", Required: true}, func(d *Cliente) *string { return &d.CNPJ }},
	{Field{Name: "logradouro", Label: "Endereço", Required: true}, func(d *Cliente) *string { return &d.Logradouro }},
	{Field{Name: "cep", Label: "CEP", Required: true}, func(d *Cliente) *string { return &d.CEP }},
	{Field{Name: "cidade", Label: "Cidade", Required: true}, func(d *Cliente) *string { return &d.Cidade }},
	{Field{Name: "estado", Label: "Estado", Required: true}, func(d *Cliente) *string { return &d.Estado }},
	{Field{Name: "area_atuacao", Label: "Área de Atuação", Type: Choice, Options: options(models.AreasAtuacao)}, func(d *Cliente) *string { return &d.AreaAtuacao }},
	{Field{Name: "valor_contrato", Label: "Valor do Contrato", Type: Decimal, Required: true}, func(d *Cliente) *string { return &d.ValorContrato }},
	{Field{Name: "descricao_servicos", Label: "Descrição dos Serviços", Required: true}, func(d *Cliente) *string { return &d.DescricaoServicos }},
	{Field{Name: "sindico_responsavel", Label: "Síndico/Responsável"}, func(d *Cliente) *string { return &d.SindicoResponsavel }},
}

func (Cliente) Kind() models.Kind { return models.KindCliente }
func (d Cliente) Set(field, value string) (Draft, error) {
	return set(d, clienteFields, field, value)
}
func (d Cliente) Get(field string) string { return get(d, clienteFields, field) }
func (Cliente) Fields() []Field           { return fields(clienteFields) }
func (d Cliente) Validate() error         { return validate(d, clienteFields) }

func (d Cliente) Payload() any {
	return models.ClienteInput{
		RazaoSocial:        d.RazaoSocial,
		CNPJ:               d.CNPJ,
		Logradouro:         d.Logradouro,
		CEP:                d.CEP,
		Cidade:             d.Cidade,
		Estado:             d.Estado,
		AreaAtuacao:        models.AreaAtuacao(d.AreaAtuacao),
		ValorContrato:      ParseDecimal(d.ValorContrato),
		DescricaoServicos:  d.DescricaoServicos,
		SindicoResponsavel: d.SindicoResponsavel,
	}
}

type Funcao struct {
	Nome      string
	Descricao string
	CBO       string
}

var funcaoFields = []binding[Funcao]{
	{Field{Name: "nome", Label: "Nome da Função", Type: Choice, Options: models.NomesFuncao}, func(d *Funcao) *string { return &d.Nome }},
	{Field{Name: "descricao", Label: "Descrição", Required: true}, func(d *Funcao) *string { return &d.Descricao }},
	{Field{Name: "cbo", Label: "CBO", Required: true}, func(d *Funcao) *string { return &d.CBO }},
}

func (Funcao) Kind() models.Kind { return models.KindFuncao }
func (d Funcao) Set(field, value string) (Draft, error) {
	return set(d, funcaoFields, field, value)
}
func (d Funcao) Get(field string) string { return get(d, funcaoFields, field) }
func (Funcao) Fields() []Field           { return fields(funcaoFields) }
func (d Funcao) Validate() error         { return validate(d, funcaoFields) }

func (d Funcao) Payload() any {
	return models.FuncaoInput{Nome: d.Nome, Descricao: d.Descricao, CBO: d.CBO}
}

type Atestado struct {
	FuncionarioID       string
	DataEmissao         string
	CID                 string
	DiasAfastamento     string
	DataRetornoPrevista string
	Observacoes         string
}

var atestadoFields = []binding[Atestado]{
	{Field{Name: "funcionario_id", Label: "Funcionário"}, func(d *Atestado) *string { return &d.FuncionarioID }},
	{Field{Name: "data_emissao", Label: "Data de Emissão", Type: Date, Required: true}, func(d *Atestado) *string { return &d.DataEmissao }},
	{Field{Name: "cid", Label: "CID", Required: true}, func(d *Atestado) *string { return &d.CID }},
	{Field{Name: "dias_afastamento", Label: "Dias de Afastamento", Type: Integer, Required: true}, func(d *Atestado) *string { return &d.DiasAfastamento }},
	{Field{Name: "data_retorno_prevista", Label: "Data de Retorno Prevista", Type: Date, Required: true}, func(d *Atestado) *string { return &d.DataRetornoPrevista }},
	{Field{Name: "observacoes", Label: "Observações"}, func(d *Atestado) *string { return &d.Observacoes }},
}

func (Atestado) Kind() models.Kind { return models.KindAtestado }
func (d Atestado) Set(field, value string) (Draft, error) {
	return set(d, atestadoFields, field, value)
}
func (d Atestado) Get(field string) string { return get(d, atestadoFields, field) }
func (Atestado) Fields() []Field           { return fields(atestadoFields) }
func (d Atestado) Validate() error         { return validate(d, atestadoFields) }

func (d Atestado) Payload() any {
	return models.AtestadoInput{
		FuncionarioID:       d.FuncionarioID,
		DataEmissao:         d.DataEmissao,
		CID:                 d.CID,
		DiasAfastamento:     ParseInt(d.DiasAfastamento),
		DataRetornoPrevista: d.DataRetornoPrevista,
		Observacoes:         d.Observacoes,
	}
}

type Licenca struct {
	FuncionarioID string
	Tipo          string
	DataInicio    string
	DataFim       string
	Motivo        string
	Observacoes   string
}

var licencaFields = []binding[Licenca]{
	{Field{Name: "funcionario_id", Label: "Funcionário"}, func(d *Licenca) *string { return &d.FuncionarioID }},
	{Field{Name: "tipo", Label: "Tipo de Licença", Type: Choice, Options: options(models.TiposLicenca)}, func(d *Licenca) *string { return &d.Tipo }},
	{Field{Name: "data_inicio", Label: "Data de Início", Type: Date, Required: true}, func(d *Licenca) *string { return &d.DataInicio }},
	{Field{Name: "data_fim", Label: "Data de Fim", Type: Date, Required: true}, func(d *Licenca) *string { return &d.DataFim }},
	{Field{Name: "motivo", Label: "Motivo", Required: true}, func(d *Licenca) *string { return &d.Motivo }},
	{Field{Name: "observacoes", Label: "Observações"}, func(d *Licenca) *string { return &d.Observacoes }},
}

func (Licenca) Kind() models.Kind { return models.KindLicenca }
func (d Licenca) Set(field, value string) (Draft, error) {
	return set(d, licencaFields, field, value)
}
func (d Licenca) Get(field string) string { return get(d, licencaFields, field) }
func (Licenca) Fields() []Field           { return fields(licencaFields) }
func (d Licenca) Validate() error         { return validate(d, licencaFields) }

func (d Licenca) Payload() any {
	return models.LicencaInput{
		FuncionarioID: d.FuncionarioID,
		Tipo:          models.TipoLicenca(d.Tipo),
		DataInicio:    d.DataInicio,
		DataFim:       d.DataFim,
		Motivo:        d.Motivo,
		Observacoes:   d.Observacoes,
	}
}

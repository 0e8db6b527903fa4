package forms

import (
	"errors"
	"fmt"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Situacao é Presente ou Ausente; só Ausente carrega tipo de falta.
type Situacao interface{ situacao() }

type Presente struct{}

type Ausente struct {
	Tipo models.TipoFalta
}

func (Presente) situacao() {}
func (Ausente) situacao()  {}

type Presenca struct {
	FuncionarioID string
	Data          string
	Situacao      Situacao
	Observacoes   string
}

// NewPresenca começa como presente, igual ao formulário.
func NewPresenca() Presenca { return Presenca{Situacao: Presente{}} }

var presencaFields = []binding[Presenca]{
	{Field{Name: "funcionario_id", Label: "Funcionário"}, func(d *Presenca) *string { return &d.FuncionarioID }},
	{Field{Name: "data", Label: "Data", Type: Date, Required: true}, func(d *Presenca) *string { return &d.Data }},
	{Field{Name: "observacoes", Label: "Observações"}, func(d *Presenca) *string { return &d.Observacoes }},
}

var (
	presenteField  = Field{Name: "presente", Label: "Status", Type: Bool, Required: true}
	tipoFaltaField = Field{Name: "tipo_falta", Label: "Tipo de Falta", Type: Choice, Required: true, Options: options(models.TiposFalta)}
)

func (Presenca) Kind() models.Kind { return models.KindPresenca }

func (d Presenca) Set(field, value string) (Draft, error) {
	switch field {
	case "presente":
		p, err := parseBool(value)
		if err != nil {
			return d, err
		}
		switch {
		case p:
			d.Situacao = Presente{}
		case !d.ausente():
			d.Situacao = Ausente{}
		}
		return d, nil
	case "tipo_falta":
		if !d.ausente() {
			return d, fmt.Errorf("%w: tipo_falta (presente)", ErrHiddenField)
		}
		d.Situacao = Ausente{Tipo: models.TipoFalta(value)}
		return d, nil
	}
	return set(d, presencaFields, field, value)
}

func (d Presenca) ausente() bool {
	_, ok := d.Situacao.(Ausente)
	return ok
}

func (d Presenca) Get(field string) string {
	switch field {
	case "presente":
		return boolText(!d.ausente())
	case "tipo_falta":
		if a, ok := d.Situacao.(Ausente); ok {
			return string(a.Tipo)
		}
		return ""
	}
	return get(d, presencaFields, field)
}

func (d Presenca) Fields() []Field {
	out := []Field{presencaFields[0].Field, presencaFields[1].Field, presenteField}
	if d.ausente() {
		out = append(out, tipoFaltaField)
	}
	return append(out, presencaFields[2].Field)
}

func (d Presenca) Validate() error {
	err := validate(d, presencaFields)
	if a, ok := d.Situacao.(Ausente); ok && !a.Tipo.Valid() {
		return joinErr(err, &FieldError{Field: "tipo_falta", Err: ErrInvalidAbsence})
	}
	return err
}

func (d Presenca) Payload() any {
	in := models.RegistroPresencaInput{
		FuncionarioID: d.FuncionarioID,
		Data:          d.Data,
		Presente:      !d.ausente(),
		Observacoes:   d.Observacoes,
	}
	if a, ok := d.Situacao.(Ausente); ok {
		in.TipoFalta = a.Tipo
	}
	return in
}

// Dependentes é SemDependentes ou ComDependentes.
type Dependentes interface{ dependentes() }

type SemDependentes struct{}

type ComDependentes struct {
	Quantidade string
}

func (SemDependentes) dependentes() {}
func (ComDependentes) dependentes() {}

type Funcionario struct {
	Nome             string
	Endereco         string
	Telefone         string
	Cidade           string
	Estado           string
	CEP              string
	FuncaoID         string
	LocalNascimento  string
	NomePai          string
	NomeMae          string
	MatriculaESocial string
	CBO              string
	RG               string
	DataEmissaoRG    string
	OrgaoEmissorRG   string
	CPF              string
	CTPS             string
	DataEmissaoCTPS  string
	OrgaoEmissorCTPS string
	TituloEleitor    string
	ZonaEleitoral    string
	SecaoEleitoral   string
	Escolaridade     string
	EstadoCivil      string
	Nacionalidade    string
	HorarioTrabalho  string
	NumeroPIS        string
	Salario          string
	EmpresaID        string
	DataAdmissao     string
	Dependentes      Dependentes
	ClienteID        string
	PostoAlocacao    string
}

func NewFuncionario() Funcionario { return Funcionario{Dependentes: SemDependentes{}} }

var funcionarioFields = []binding[Funcionario]{
	{Field{Name: "nome", Label: "Nome Completo", Required: true}, func(d *Funcionario) *string { return &d.Nome }},
	{Field{Name: "cpf", Label: "CPF", Required: true}, func(d *Funcionario) *string { return &d.CPF }},
	{Field{Name: "rg", Label: "RG", Required: true}, func(d *Funcionario) *string { return &d.RG }},
	{Field{Name: "telefone", Label: "Telefone", Required: true}, func(d *Funcionario) *string { return &d.Telefone }},
	{Field{Name: "endereco", Label: "Endereço", Required: true}, func(d *Funcionario) *string { return &d.Endereco }},
	{Field{Name: "cidade", Label: "Cidade", Required: true}, func(d *Funcionario) *string { return &d.Cidade }},
	{Field{Name: "estado", Label: "Estado", Required: true}, func(d *Funcionario) *string { return &d.Estado }},
	{Field{Name: "cep", Label: "CEP", Required: true}, func(d *Funcionario) *string { return &d.CEP }},
	{Field{Name: "empresa_id", Label: "Empresa"}, func(d *Funcionario) *string { return &d.EmpresaID }},
	{Field{Name: "cliente_id", Label: "Cliente"}, func(d *Funcionario) *string { return &d.ClienteID }},
	{Field{Name: "funcao_id", Label: "Função"}, func(d *Funcionario) *string { return &d.FuncaoID }},
	{Field{Name: "posto_alocacao", Label: "Posto de Alocação", Required: true}, func(d *Funcionario) *string { return &d.PostoAlocacao }},
	{Field{Name: "salario", Label: "Salário", Type: Decimal, Required: true}, func(d *Funcionario) *string { return &d.Salario }},
	{Field{Name: "data_admissao", Label: "Data de Admissão", Type: Date, Required: true}, func(d *Funcionario) *string { return &d.DataAdmissao }},
	{Field{Name: "estado_civil", Label: "Estado Civil", Type: Choice, Options: options(models.EstadosCivis)}, func(d *Funcionario) *string { return &d.EstadoCivil }},
	{Field{Name: "escolaridade", Label: "Escolaridade", Type: Choice, Options: options(models.Escolaridades)}, func(d *Funcionario) *string { return &d.Escolaridade }},
	{Field{Name: "local_nascimento", Label: "Local de Nascimento", Required: true}, func(d *Funcionario) *string { return &d.LocalNascimento }},
	{Field{Name: "nacionalidade", Label: "Nacionalidade", Required: true}, func(d *Funcionario) *string { return &d.Nacionalidade }},
	{Field{Name: "nome_pai", Label: "Nome do Pai", Required: true}, func(d *Funcionario) *string { return &d.NomePai }},
	{Field{Name: "nome_mae", Label: "Nome da Mãe", Required: true}, func(d *Funcionario) *string { return &d.NomeMae }},
	{Field{Name: "data_emissao_rg", Label: "Data de Emissão do RG", Type: Date, Required: true}, func(d *Funcionario) *string { return &d.DataEmissaoRG }},
	{Field{Name: "orgao_emissor_rg", Label: "Órgão Emissor do RG", Required: true}, func(d *Funcionario) *string { return &d.OrgaoEmissorRG }},
	{Field{Name: "ctps", Label: "CTPS", Required: true}, func(d *Funcionario) *string { return &d.CTPS }},
	{Field{Name: "data_emissao_ctps", Label: "Data de Emissão da CTPS", Type: Date, Required: true}, func(d *Funcionario) *string { return &d.DataEmissaoCTPS }},
	{Field{Name: "orgao_emissor_ctps", Label: "Órgão Emissor da CTPS", Required: true}, func(d *Funcionario) *string { return &d.OrgaoEmissorCTPS }},
	{Field{Name: "titulo_eleitor", Label: "Título de Eleitor", Required: true}, func(d *Funcionario) *string { return &d.TituloEleitor }},
	{Field{Name: "zona_eleitoral", Label: "Zona Eleitoral", Required: true}, func(d *Funcionario) *string { return &d.ZonaEleitoral }},
	{Field{Name: "secao_eleitoral", Label: "Seção Eleitoral", Required: true}, func(d *Funcionario) *string { return &d.SecaoEleitoral }},
	{Field{Name: "matricula_esocial", Label: "Matrícula eSocial", Required: true}, func(d *Funcionario) *string { return &d.MatriculaESocial }},
	{Field{Name: "cbo", Label: "CBO", Required: true}, func(d *Funcionario) *string { return &d.CBO }},
	{Field{Name: "numero_pis", Label: "Número PIS", Required: true}, func(d *Funcionario) *string { return &d.NumeroPIS }},
	{Field{Name: "horario_trabalho", Label: "Horário de Trabalho", Required: true}, func(d *Funcionario) *string { return &d.HorarioTrabalho }},
}

var (
	temDependentesField = Field{Name: "tem_dependentes", Label: "Tem Dependentes?", Type: Bool}
	quantidadeField     = Field{Name: "quantidade_dependentes", Label: "Quantidade de Dependentes", Type: Integer}
)

func (Funcionario) Kind() models.Kind { return models.KindFuncionario }

func (d Funcionario) comDependentes() (ComDependentes, bool) {
	c, ok := d.Dependentes.(ComDependentes)
	return c, ok
}

func (d Funcionario) Set(field, value string) (Draft, error) {
	switch field {
	case "tem_dependentes":
		tem, err := parseBool(value)
		if err != nil {
			return d, err
		}
		_, com := d.comDependentes()
		switch {
		case !tem:
			d.Dependentes = SemDependentes{}
		case !com:
			d.Dependentes = ComDependentes{}
		}
		return d, nil
	case "quantidade_dependentes":
		if _, ok := d.comDependentes(); !ok {
			return d, fmt.Errorf("%w: quantidade_dependentes (sem dependentes)", ErrHiddenField)
		}
		d.Dependentes = ComDependentes{Quantidade: value}
		return d, nil
	}
	return set(d, funcionarioFields, field, value)
}

func (d Funcionario) Get(field string) string {
	switch field {
	case "tem_dependentes":
		_, com := d.comDependentes()
		return boolText(com)
	case "quantidade_dependentes":
		if c, ok := d.comDependentes(); ok {
			return c.Quantidade
		}
		return "0"
	}
	return get(d, funcionarioFields, field)
}

func (d Funcionario) Fields() []Field {
	out := append(fields(funcionarioFields), temDependentesField)
	if _, ok := d.comDependentes(); ok {
		out = append(out, quantidadeField)
	}
	return out
}

func (d Funcionario) Validate() error {
	err := validate(d, funcionarioFields)
	if c, ok := d.comDependentes(); ok {
		if qerr := checkField(quantidadeField, c.Quantidade); qerr != nil {
			err = joinErr(err, &FieldError{Field: quantidadeField.Name, Err: qerr})
		}
	}
	return err
}

func (d Funcionario) Payload() any {
	in := models.FuncionarioInput{
		Nome:             d.Nome,
		Endereco:         d.Endereco,
		Telefone:         d.Telefone,
		Cidade:           d.Cidade,
		Estado:           d.Estado,
		CEP:              d.CEP,
		FuncaoID:         d.FuncaoID,
		LocalNascimento:  d.LocalNascimento,
		NomePai:          d.NomePai,
		NomeMae:          d.NomeMae,
		MatriculaESocial: d.MatriculaESocial,
		CBO:              d.CBO,
		RG:               d.RG,
		DataEmissaoRG:    d.DataEmissaoRG,
		OrgaoEmissorRG:   d.OrgaoEmissorRG,
		CPF:              d.CPF,
		CTPS:             d.CTPS,
		DataEmissaoCTPS:  d.DataEmissaoCTPS,
		OrgaoEmissorCTPS: d.OrgaoEmissorCTPS,
		TituloEleitor:    d.TituloEleitor,
		ZonaEleitoral:    d.ZonaEleitoral,
		SecaoEleitoral:   d.SecaoEleitoral,
		Escolaridade:     models.Escolaridade(d.Escolaridade),
		EstadoCivil:      models.EstadoCivil(d.EstadoCivil),
		Nacionalidade:    d.Nacionalidade,
		HorarioTrabalho:  d.HorarioTrabalho,
		NumeroPIS:        d.NumeroPIS,
		Salario:          ParseDecimal(d.Salario),
		EmpresaID:        d.EmpresaID,
		DataAdmissao:     d.DataAdmissao,
		ClienteID:        d.ClienteID,
		PostoAlocacao:    d.PostoAlocacao,
	}
	if c, ok := d.comDependentes(); ok {
		in.TemDependentes = true
		in.QuantidadeDependentes = ParseInt(c.Quantidade)
	}
	return in
}

func joinErr(err, extra error) error {
	if err == nil {
		return extra
	}
	return errors.Join(err, extra)
}

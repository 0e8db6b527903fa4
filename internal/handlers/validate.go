package handlers

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

var ErrValidation = errors.New("validation failed")

// ValidationError junta todos os problemas do corpo numa única resposta 422.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Problems, "; ") }
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type checker struct {
	problems []string
}

func (c *checker) add(format string, args ...any) {
	c.problems = append(c.problems, fmt.Sprintf(format, args...))
}

func (c *checker) required(name, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.add("%s is required", name)
		return false
	}
	return true
}

func (c *checker) date(name, v string) {
	if !c.required(name, v) {
		return
	}
	if _, err := time.Parse(models.DateLayout, v); err != nil {
		c.add("%s must be a date (YYYY-MM-DD)", name)
	}
}

func (c *checker) oneOf(name string, valid bool, v string) {
	if !c.required(name, v) {
		return
	}
	if !valid {
		c.add("%s: invalid value %q", name, v)
	}
}

func (c *checker) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: c.problems}
}

func validateEmpresa(in *models.EmpresaInput) error {
	var c checker
	c.required("razao_social", in.RazaoSocial)
	c.required("cnpj", in.CNPJ)
	c.required("logradouro", in.Logradouro)
	c.required("cep", in.CEP)
	c.required("cidade", in.Cidade)
	c.required("estado", in.Estado)
	return c.err()
}

func validateCliente(in *models.ClienteInput) error {
	var c checker
	c.required("razao_social", in.RazaoSocial)
	c.required("cnpj", in.CNPJ)
	c.required("logradouro", in.Logradouro)
	c.required("cep", in.CEP)
	c.required("cidade", in.Cidade)
	c.required("estado", in.Estado)
	c.oneOf("area_atuacao", in.AreaAtuacao.Valid(), string(in.AreaAtuacao))
	c.required("descricao_servicos", in.DescricaoServicos)
	return c.err()
}

func validateFuncao(in *models.FuncaoInput) error {
	var c checker
	c.oneOf("nome", slices.Contains(models.NomesFuncao, in.Nome), in.Nome)
	c.required("descricao", in.Descricao)
	c.required("cbo", in.CBO)
	return c.err()
}

func validateFuncionario(in *models.FuncionarioInput) error {
	var c checker
	for _, f := range []struct{ name, v string }{
		{"nome", in.Nome},
		{"endereco", in.Endereco},
		{"telefone", in.Telefone},
		{"cidade", in.Cidade},
		{"estado", in.Estado},
		{"cep", in.CEP},
		{"funcao_id", in.FuncaoID},
		{"local_nascimento", in.LocalNascimento},
		{"nome_pai", in.NomePai},
		{"nome_mae", in.NomeMae},
		{"matricula_esocial", in.MatriculaESocial},
		{"cbo", in.CBO},
		{"rg", in.RG},
		{"orgao_emissor_rg", in.OrgaoEmissorRG},
		{"cpf", in.CPF},
		{"ctps", in.CTPS},
		{"orgao_emissor_ctps", in.OrgaoEmissorCTPS},
		{"titulo_eleitor", in.TituloEleitor},
		{"zona_eleitoral", in.ZonaEleitoral},
		{"secao_eleitoral", in.SecaoEleitoral},
		{"nacionalidade", in.Nacionalidade},
		{"horario_trabalho", in.HorarioTrabalho},
		{"numero_pis", in.NumeroPIS},
		{"empresa_id", in.EmpresaID},
		{"cliente_id", in.ClienteID},
		{"posto_alocacao", in.PostoAlocacao},
	} {
		c.required(f.name, f.v)
	}
	c.date("data_emissao_rg", in.DataEmissaoRG)
	c.date("data_emissao_ctps", in.DataEmissaoCTPS)
	c.date("data_admissao", in.DataAdmissao)
	c.oneOf("escolaridade", in.Escolaridade.Valid(), string(in.Escolaridade))
	c.oneOf("estado_civil", in.EstadoCivil.Valid(), string(in.EstadoCivil))
	if !in.TemDependentes {
		in.QuantidadeDependentes = 0
	}
	return c.err()
}

func validatePresenca(in *models.RegistroPresencaInput) error {
	var c checker
	c.required("funcionario_id", in.FuncionarioID)
	c.date("data", in.Data)
	if in.Presente {
		// presente não carrega tipo de falta
		in.TipoFalta = ""
	} else if in.TipoFalta != "" && !in.TipoFalta.Valid() {
		c.add("tipo_falta: invalid value %q", in.TipoFalta)
	}
	return c.err()
}

func validateAtestado(in *models.AtestadoInput) error {
	var c checker
	c.required("funcionario_id", in.FuncionarioID)
	c.date("data_emissao", in.DataEmissao)
	c.required("cid", in.CID)
	c.date("data_retorno_prevista", in.DataRetornoPrevista)
	return c.err()
}

func validateLicenca(in *models.LicencaInput) error {
	var c checker
	c.required("funcionario_id", in.FuncionarioID)
	c.oneOf("tipo", in.Tipo.Valid(), string(in.Tipo))
	c.date("data_inicio", in.DataInicio)
	c.date("data_fim", in.DataFim)
	c.required("motivo", in.Motivo)
	return c.err()
}

package render

import (
	"fmt"
	"strconv"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
	"github.com/Werneck0live/gestao-terceirizados/internal/utils"
)

// Table é a visão tabular de uma coleção, com as referências já resolvidas.
// Usada pelo terminal e pela exportação.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func Rows(st store.State, kind models.Kind) (Table, error) {
	t := Table{Title: kind.Title()}
	switch kind {
	case models.KindEmpresa:
		t.Headers = []string{"Razão Social", "CNPJ", "Cidade/UF", "CEP", "Funcionários", "Mín. PcD"}
		quadro := headcount(st)
		for _, e := range st.Empresas.Items() {
			cota := utils.CalcCotaPCD(quadro[e.ID])
			t.Rows = append(t.Rows, []string{
				e.RazaoSocial, utils.FormatCNPJ(e.CNPJ), e.Cidade + "/" + e.Estado, e.CEP,
				strconv.Itoa(cota.Quadro), strconv.Itoa(cota.Minimo),
			})
		}
	case models.KindCliente:
		t.Headers = []string{"Razão Social", "CNPJ", "Área", "Valor do Contrato", "Síndico/Responsável", "Cidade/UF"}
		for _, c := range st.Clientes.Items() {
			t.Rows = append(t.Rows, []string{
				c.RazaoSocial, utils.FormatCNPJ(c.CNPJ), string(c.AreaAtuacao),
				BRL(c.ValorContrato), c.SindicoResponsavel, c.Cidade + "/" + c.Estado,
			})
		}
	case models.KindFuncao:
		t.Headers = []string{"Nome", "CBO", "Descrição"}
		for _, f := range st.Funcoes.Items() {
			t.Rows = append(t.Rows, []string{f.Nome, f.CBO, f.Descricao})
		}
	case models.KindFuncionario:
		t.Headers = []string{"Nome", "CPF", "Função", "Empresa", "Cliente", "Posto", "Salário", "Admissão"}
		for _, f := range st.Funcionarios.Items() {
			t.Rows = append(t.Rows, []string{
				f.Nome, utils.FormatCPF(f.CPF),
				st.FuncaoNome(f.FuncaoID), st.EmpresaNome(f.EmpresaID), st.ClienteNome(f.ClienteID),
				f.PostoAlocacao, BRL(f.Salario), Date(f.DataAdmissao),
			})
		}
	case models.KindPresenca:
		t.Headers = []string{"Funcionário", "Data", "Status", "Observações"}
		for _, p := range st.Presencas.Items() {
			t.Rows = append(t.Rows, []string{
				st.FuncionarioNome(p.FuncionarioID), Date(p.Data), Status(p.RegistroPresencaInput), p.Observacoes,
			})
		}
	case models.KindAtestado:
		t.Headers = []string{"Funcionário", "Emissão", "CID", "Dias", "Retorno Previsto"}
		for _, a := range st.Atestados.Items() {
			t.Rows = append(t.Rows, []string{
				st.FuncionarioNome(a.FuncionarioID), Date(a.DataEmissao), a.CID,
				strconv.Itoa(a.DiasAfastamento), Date(a.DataRetornoPrevista),
			})
		}
	case models.KindLicenca:
		t.Headers = []string{"Funcionário", "Tipo", "Início", "Fim", "Motivo"}
		for _, l := range st.Licencas.Items() {
			t.Rows = append(t.Rows, []string{
				st.FuncionarioNome(l.FuncionarioID), string(l.Tipo), Date(l.DataInicio), Date(l.DataFim), l.Motivo,
			})
		}
	default:
		return t, fmt.Errorf("%w: %q", models.ErrUnknownKind, kind)
	}
	return t, nil
}

func Status(p models.RegistroPresencaInput) string {
	if p.Presente {
		return "Presente"
	}
	if p.TipoFalta == "" {
		return "Ausente"
	}
	return "Ausente (" + string(p.TipoFalta) + ")"
}

// headcount conta funcionários alocados por empresa_id.
func headcount(st store.State) map[string]int {
	out := make(map[string]int, st.Empresas.Len())
	for _, f := range st.Funcionarios.Items() {
		out[f.EmpresaID]++
	}
	return out
}

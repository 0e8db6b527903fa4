package store

import (
	"fmt"

	"github.com/Werneck0live/gestao-terceirizados/internal/forms"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

// Action é o conjunto fechado de mudanças aceitas pelo Store.
type Action interface {
	apply(*State) error
	String() string
}

type ReplaceEmpresas []models.Empresa
type ReplaceClientes []models.Cliente
type ReplaceFuncoes []models.Funcao
type ReplaceFuncionarios []models.Funcionario
type ReplacePresencas []models.RegistroPresenca
type ReplaceAtestados []models.Atestado
type ReplaceLicencas []models.Licenca
type ReplaceDashboard models.DashboardStats

func (a ReplaceEmpresas) apply(s *State) error {
	s.Empresas = NewIndex([]models.Empresa(a))
	return nil
}
func (a ReplaceClientes) apply(s *State) error {
	s.Clientes = NewIndex([]models.Cliente(a))
	return nil
}
func (a ReplaceFuncoes) apply(s *State) error { s.Funcoes = NewIndex([]models.Funcao(a)); return nil }
func (a ReplaceFuncionarios) apply(s *State) error {
	s.Funcionarios = NewIndex([]models.Funcionario(a))
	return nil
}
func (a ReplacePresencas) apply(s *State) error {
	s.Presencas = NewIndex([]models.RegistroPresenca(a))
	return nil
}
func (a ReplaceAtestados) apply(s *State) error {
	s.Atestados = NewIndex([]models.Atestado(a))
	return nil
}
func (a ReplaceLicencas) apply(s *State) error {
	s.Licencas = NewIndex([]models.Licenca(a))
	return nil
}
func (a ReplaceDashboard) apply(s *State) error { s.Dashboard = models.DashboardStats(a); return nil }

func (ReplaceEmpresas) String() string     { return "replace_empresas" }
func (ReplaceClientes) String() string     { return "replace_clientes" }
func (ReplaceFuncoes) String() string      { return "replace_funcoes" }
func (ReplaceFuncionarios) String() string { return "replace_funcionarios" }
func (ReplacePresencas) String() string    { return "replace_presencas" }
func (ReplaceAtestados) String() string    { return "replace_atestados" }
func (ReplaceLicencas) String() string     { return "replace_licencas" }
func (ReplaceDashboard) String() string    { return "replace_dashboard" }

// SetField altera um campo do rascunho de Kind.
type SetField struct {
	Kind  models.Kind
	Field string
	Value string
}

func (a SetField) apply(s *State) error {
	d, ok := s.Drafts[a.Kind]
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrUnknownKind, a.Kind)
	}
	next, err := d.Set(a.Field, a.Value)
	if err != nil {
		return err
	}
	s.Drafts[a.Kind] = next
	return nil
}

func (a SetField) String() string { return "set_field " + string(a.Kind) + "." + a.Field }

// ResetDraft volta o rascunho aos valores iniciais.
type ResetDraft struct{ Kind models.Kind }

func (a ResetDraft) apply(s *State) error {
	d, err := forms.New(a.Kind)
	if err != nil {
		return err
	}
	s.Drafts[a.Kind] = d
	return nil
}

func (a ResetDraft) String() string { return "reset_draft " + string(a.Kind) }

type BeginSubmit struct{ Kind models.Kind }
type EndSubmit struct{ Kind models.Kind }

func (a BeginSubmit) apply(s *State) error {
	s.Submits[a.Kind] = Submitting
	return nil
}

func (a EndSubmit) apply(s *State) error {
	s.Submits[a.Kind] = Editing
	return nil
}

func (a BeginSubmit) String() string { return "begin_submit " + string(a.Kind) }
func (a EndSubmit) String() string   { return "end_submit " + string(a.Kind) }

// Package store é o estado do painel: as sete coleções, o resumo do
// dashboard e os rascunhos dos formulários. Tudo muda via Dispatch.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Werneck0live/gestao-terceirizados/internal/forms"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

var ErrUnknownAction = errors.New("unknown action")

// SubmitState é o estado do envio de um formulário.
type SubmitState int

const (
	Editing SubmitState = iota
	Submitting
)

func (s SubmitState) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "editing"
}

// State é um retrato imutável; quem lê não deve alterar as fatias.
type State struct {
	Empresas     Index[models.Empresa]
	Clientes     Index[models.Cliente]
	Funcoes      Index[models.Funcao]
	Funcionarios Index[models.Funcionario]
	Presencas    Index[models.RegistroPresenca]
	Atestados    Index[models.Atestado]
	Licencas     Index[models.Licenca]
	Dashboard    models.DashboardStats

	Drafts  map[models.Kind]forms.Draft
	Submits map[models.Kind]SubmitState
	Version uint64
}

type Store struct {
	mu    sync.RWMutex
	state State
	subs  []chan struct{}
}

func New() *Store {
	s := &Store{}
	s.state.Drafts = make(map[models.Kind]forms.Draft, len(models.Kinds))
	s.state.Submits = make(map[models.Kind]SubmitState, len(models.Kinds))
	for _, k := range models.Kinds {
		d, _ := forms.New(k)
		s.state.Drafts[k] = d
	}
	s.state.Empresas = NewIndex[models.Empresa](nil)
	s.state.Clientes = NewIndex[models.Cliente](nil)
	s.state.Funcoes = NewIndex[models.Funcao](nil)
	s.state.Funcionarios = NewIndex[models.Funcionario](nil)
	s.state.Presencas = NewIndex[models.RegistroPresenca](nil)
	s.state.Atestados = NewIndex[models.Atestado](nil)
	s.state.Licencas = NewIndex[models.Licenca](nil)
	return s
}

// Snapshot devolve o estado atual. Os mapas são copiados.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state
	st.Drafts = make(map[models.Kind]forms.Draft, len(s.state.Drafts))
	for k, v := range s.state.Drafts {
		st.Drafts[k] = v
	}
	st.Submits = make(map[models.Kind]SubmitState, len(s.state.Submits))
	for k, v := range s.state.Submits {
		st.Submits[k] = v
	}
	return st
}

func (s *Store) Draft(kind models.Kind) forms.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Drafts[kind]
}

// Changes devolve um canal que recebe um sinal (sem bloquear) a cada mudança.
func (s *Store) Changes() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	err := a.apply(&s.state)
	if err == nil {
		s.state.Version++
	}
	subs := s.subs
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", a, err)
	}
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

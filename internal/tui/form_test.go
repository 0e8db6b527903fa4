package tui

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Werneck0live/gestao-terceirizados/internal/apiclient"
	"github.com/Werneck0live/gestao-terceirizados/internal/handlers"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/repository"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
	"github.com/Werneck0live/gestao-terceirizados/internal/submit"
)

// painel ligado a um backend em memória de verdade
func newFormModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(handlers.NewRouter(repository.NewMemoryBackend(), nil, 0))
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	st := store.New()
	loader := store.NewLoader(api, st, nil)
	if err := loader.LoadAll(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return New(loader, submit.New(loader, nil), 5*time.Second), st
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// runSubmit executa o comando devolvido pelo enter e entrega o resultado ao model.
func runSubmit(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	var pending []tea.Cmd
	pending = append(pending, cmd)
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		switch msg := c().(type) {
		case tea.BatchMsg:
			pending = append(pending, msg...)
		case submittedMsg:
			next, _ := m.Update(msg)
			return next.(Model)
		}
	}
	t.Fatal("submit command produced no result")
	return m
}

func TestForm_FillSubmitRefreshesList(t *testing.T) {
	m, st := newFormModel(t)

	m = press(m, "4", "n") // Funções
	if !m.form.open || m.form.kind != models.KindFuncao {
		t.Fatalf("form = %+v", m.form)
	}

	// nome é seleção; descrição e CBO são texto
	m = press(m, "right", "down", "Portaria 24h", "down", "5174-10")
	if got := st.Draft(models.KindFuncao).Get("descricao"); got != "Portaria 24h" {
		t.Fatalf("descricao no rascunho = %q", got)
	}

	next, cmd := m.Update(keyMsg("enter"))
	m = runSubmit(t, next.(Model), cmd)

	if m.form.open {
		t.Fatal("form should close after a successful submit")
	}
	snap := st.Snapshot()
	if snap.Funcoes.Len() != 1 || snap.Funcoes.Items()[0].Nome != "Porteiro" {
		t.Fatalf("funcoes = %#v", snap.Funcoes.Items())
	}
	if st.Draft(models.KindFuncao).Get("cbo") != "" {
		t.Fatal("draft should be reset")
	}
	view := m.View()
	if !strings.Contains(view, "Portaria 24h") || !strings.Contains(view, "cadastro salvo") {
		t.Fatalf("list not refreshed:\n%s", view)
	}
}

func TestForm_FailureKeepsDraft(t *testing.T) {
	m, st := newFormModel(t)

	// sem nome o formulário passa, mas o backend recusa (422)
	m = press(m, "4", "n", "down", "Limpeza", "down", "1")
	next, cmd := m.Update(keyMsg("enter"))
	m = runSubmit(t, next.(Model), cmd)

	if !m.form.open || !m.form.failed {
		t.Fatalf("form should stay open and flagged: %+v", m.form)
	}
	if got := st.Draft(models.KindFuncao).Get("cbo"); got != "1" {
		t.Fatalf("cbo = %q; draft must be kept", got)
	}
	if st.Snapshot().Funcoes.Len() != 0 {
		t.Fatal("nothing should have been created")
	}
	view := m.View()
	for _, raw := range []string{"422", "invalid value", "is required"} {
		if strings.Contains(view, raw) {
			t.Fatalf("raw error %q leaked into view:\n%s", raw, view)
		}
	}

	// corrige e reenvia a partir do mesmo rascunho
	m = press(m, "up", "up", "right")
	next, cmd = m.Update(keyMsg("ctrl+s"))
	m = runSubmit(t, next.(Model), cmd)
	if m.form.open || st.Snapshot().Funcoes.Len() != 1 {
		t.Fatalf("retry failed: open=%v len=%d", m.form.open, st.Snapshot().Funcoes.Len())
	}
}

func TestForm_ConditionalFields(t *testing.T) {
	m, _ := newFormModel(t)

	m = press(m, "6", "n") // Presença
	if strings.Contains(m.View(), "Tipo de Falta") {
		t.Fatal("presente: tipo de falta must be hidden")
	}

	m = press(m, "down", "down", "right") // Status -> Não
	if !strings.Contains(m.View(), "Tipo de Falta") {
		t.Fatalf("ausente: tipo de falta must show:\n%s", m.View())
	}

	m = press(m, "left")
	if strings.Contains(m.View(), "Tipo de Falta") {
		t.Fatal("back to presente: tipo de falta must hide again")
	}

	// esc fecha; Documentos abre atestado com n e licença com L
	m = press(m, "esc", "7", "L")
	if !m.form.open || m.form.kind != models.KindLicenca {
		t.Fatalf("form = %+v", m.form)
	}
}

package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Werneck0live/gestao-terceirizados/internal/forms"
	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/render"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
)

// formState é o formulário de cadastro aberto sobre a aba atual. O valor
// dos campos vive no Store; aqui fica só o foco e o texto em edição.
type formState struct {
	open    bool
	kind    models.Kind
	cursor  int
	input   textinput.Model
	sending bool
	failed  bool
}

type submittedMsg struct {
	kind models.Kind
	err  error
}

// campos *_id escolhem entre os registros já carregados
var refKinds = map[string]models.Kind{
	"empresa_id":     models.KindEmpresa,
	"cliente_id":     models.KindCliente,
	"funcao_id":      models.KindFuncao,
	"funcionario_id": models.KindFuncionario,
}

var (
	fieldCursor = lipgloss.NewStyle().Foreground(render.PrimaryColor).Bold(true)
	fieldLabel  = lipgloss.NewStyle().Width(26)
)

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Width = 40
	return ti
}

func (m Model) openForm(kind models.Kind) (Model, tea.Cmd) {
	m.form = formState{open: true, kind: kind, input: newInput()}
	m.focusField()
	return m, textinput.Blink
}

func (m Model) draft() forms.Draft { return m.loader.Store.Draft(m.form.kind) }

func (m Model) fields() []forms.Field {
	if d := m.draft(); d != nil {
		return d.Fields()
	}
	return nil
}

func (m Model) field() (forms.Field, bool) {
	fs := m.fields()
	if m.form.cursor < 0 || m.form.cursor >= len(fs) {
		return forms.Field{}, false
	}
	return fs[m.form.cursor], true
}

// choices devolve os valores possíveis de campos de seleção; nil para texto livre.
func (m Model) choices(f forms.Field) []string {
	if k, ok := refKinds[f.Name]; ok {
		return refIDs(m.loader.Store.Snapshot(), k)
	}
	switch f.Type {
	case forms.Bool:
		return []string{"true", "false"}
	case forms.Choice:
		return f.Options
	}
	return nil
}

func (m Model) isSelect(f forms.Field) bool {
	_, ref := refKinds[f.Name]
	return ref || f.Type == forms.Bool || f.Type == forms.Choice
}

func refIDs(st store.State, k models.Kind) []string {
	var ids []string
	switch k {
	case models.KindEmpresa:
		for _, e := range st.Empresas.Items() {
			ids = append(ids, e.ID)
		}
	case models.KindCliente:
		for _, c := range st.Clientes.Items() {
			ids = append(ids, c.ID)
		}
	case models.KindFuncao:
		for _, f := range st.Funcoes.Items() {
			ids = append(ids, f.ID)
		}
	case models.KindFuncionario:
		for _, f := range st.Funcionarios.Items() {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func (m Model) choiceLabel(f forms.Field, v string) string {
	if k, ok := refKinds[f.Name]; ok {
		if v == "" {
			return ""
		}
		st := m.loader.Store.Snapshot()
		switch k {
		case models.KindEmpresa:
			return st.EmpresaNome(v)
		case models.KindCliente:
			return st.ClienteNome(v)
		case models.KindFuncao:
			return st.FuncaoNome(v)
		case models.KindFuncionario:
			return st.FuncionarioNome(v)
		}
	}
	if f.Type == forms.Bool {
		switch v {
		case "true":
			return "Sim"
		case "false":
			return "Não"
		}
	}
	return v
}

// focusField carrega o valor do campo focado no textinput.
func (m *Model) focusField() {
	f, ok := m.field()
	if !ok || m.isSelect(f) {
		m.form.input.Blur()
		return
	}
	m.form.input.SetValue(m.draft().Get(f.Name))
	m.form.input.CursorEnd()
	m.form.input.Focus()
}

func (m *Model) move(delta int) {
	n := len(m.fields())
	if n == 0 {
		return
	}
	m.form.cursor = (m.form.cursor + delta + n) % n
	m.focusField()
}

func (m *Model) setField(name, value string) {
	err := m.loader.Store.Dispatch(store.SetField{Kind: m.form.kind, Field: name, Value: value})
	if err != nil {
		m.loader.Log.Debug("form_set_rejected", "kind", m.form.kind, "field", name, "err", err)
	}
	// presente/tem_dependentes mudam a lista de campos
	if n := len(m.fields()); m.form.cursor >= n {
		m.form.cursor = n - 1
	}
}

func (m *Model) cycle(f forms.Field, delta int) {
	opts := m.choices(f)
	if len(opts) == 0 {
		return
	}
	i := slices.Index(opts, m.draft().Get(f.Name))
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(opts) - 1
	default:
		i = (i + delta + len(opts)) % len(opts)
	}
	m.setField(f.Name, opts[i])
}

func (m Model) submitForm() (Model, tea.Cmd) {
	if m.form.sending || m.submit == nil {
		return m, nil
	}
	m.form.sending = true
	m.form.failed = false
	kind, coord, timeout := m.form.kind, m.submit, m.timeout
	send := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return submittedMsg{kind: kind, err: coord.Submit(ctx, kind, nil)}
	}
	return m, tea.Batch(send, m.spinner.Tick)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, formKeys.Close):
		m.form.open = false
		return m, nil
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, formKeys.Submit):
		return m.submitForm()
	case key.Matches(msg, formKeys.Prev):
		m.move(-1)
		return m, nil
	case key.Matches(msg, formKeys.Next):
		if msg.String() == "enter" && m.form.cursor == len(m.fields())-1 {
			return m.submitForm()
		}
		m.move(1)
		return m, nil
	}

	f, ok := m.field()
	if !ok {
		return m, nil
	}
	if m.isSelect(f) {
		switch {
		case key.Matches(msg, formKeys.Option):
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.cycle(f, delta)
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.form.input.Value()
	m.form.input, cmd = m.form.input.Update(msg)
	if v := m.form.input.Value(); v != before {
		m.setField(f.Name, v)
	}
	return m, cmd
}

func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(render.Title.Render("Novo cadastro · " + m.form.kind.Title()))
	b.WriteString("\n")

	d := m.draft()
	for i, f := range m.fields() {
		label := f.Label
		if f.Required {
			label += " *"
		}
		prefix := "  "
		if i == m.form.cursor {
			prefix = fieldCursor.Render("› ")
		}

		var value string
		switch {
		case i == m.form.cursor && !m.isSelect(f):
			value = m.form.input.View()
		case i == m.form.cursor:
			value = "‹ " + m.choiceLabel(f, d.Get(f.Name)) + " ›"
		case m.isSelect(f):
			value = m.choiceLabel(f, d.Get(f.Name))
		default:
			value = d.Get(f.Name)
		}
		b.WriteString(prefix + fieldLabel.Render(label) + value + "\n")
	}
	return b.String()
}

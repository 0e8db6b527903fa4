// Package tui é o painel em abas (bubbletea) sobre o Store.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
	"github.com/Werneck0live/gestao-terceirizados/internal/render"
	"github.com/Werneck0live/gestao-terceirizados/internal/store"
	"github.com/Werneck0live/gestao-terceirizados/internal/submit"
)

// Tab agrupa os kinds exibidos numa aba; vazio é o dashboard.
type Tab struct {
	Title string
	Kinds []models.Kind
}

var Tabs = []Tab{
	{Title: "Dashboard"},
	{Title: "Empresas", Kinds: []models.Kind{models.KindEmpresa}},
	{Title: "Clientes", Kinds: []models.Kind{models.KindCliente}},
	{Title: "Funções", Kinds: []models.Kind{models.KindFuncao}},
	{Title: "Funcionários", Kinds: []models.Kind{models.KindFuncionario}},
	{Title: "Presença", Kinds: []models.Kind{models.KindPresenca}},
	{Title: "Documentos", Kinds: []models.Kind{models.KindAtestado, models.KindLicenca}},
}

var (
	tabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(render.PrimaryColor).
			Padding(0, 2)
	tabInactive = lipgloss.NewStyle().
			Foreground(render.MutedColor).
			Padding(0, 2)
	helpStyle = render.Muted.MarginTop(1)
)

// Messages

type changedMsg struct{}

type loadedMsg struct {
	err error
	at  time.Time
}

type Model struct {
	loader  *store.Loader
	submit  *submit.Coordinator
	changes <-chan struct{}
	timeout time.Duration

	spinner spinner.Model
	help    help.Model

	active  int
	width   int
	loading bool
	lastErr error
	lastAt  time.Time

	form  formState
	saved models.Kind
}

// New monta o painel; sem coordinator (nil) os formulários ficam desligados.
func New(loader *store.Loader, coord *submit.Coordinator, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return Model{
		loader:  loader,
		submit:  coord,
		changes: loader.Store.Changes(),
		timeout: timeout,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(render.PrimaryColor))),
		help:    help.New(),
		loading: true,
	}
}

// Commands

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		err := m.loader.LoadAll(ctx)
		return loadedMsg{err: err, at: time.Now()}
	}
}

func (m Model) waitChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitChange(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form.open {
			return m.updateForm(msg)
		}
		m.saved = ""
		switch {
		case key.Matches(msg, keys.New):
			if kinds := Tabs[m.active].Kinds; len(kinds) > 0 && m.submit != nil {
				return m.openForm(kinds[0])
			}
		case key.Matches(msg, keys.NewAlt):
			if kinds := Tabs[m.active].Kinds; len(kinds) > 1 && m.submit != nil {
				return m.openForm(kinds[1])
			}
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.active = (m.active + 1) % len(Tabs)
		case key.Matches(msg, keys.Prev):
			m.active = (m.active - 1 + len(Tabs)) % len(Tabs)
		case key.Matches(msg, keys.Reload):
			if !m.loading {
				m.loading = true
				return m, tea.Batch(m.load(), m.spinner.Tick)
			}
		case key.Matches(msg, keys.Jump):
			if n := int(msg.String()[0] - '1'); n < len(Tabs) {
				m.active = n
			}
		}
		return m, nil

	case submittedMsg:
		if !m.form.open || msg.kind != m.form.kind {
			return m, nil
		}
		m.form.sending = false
		if msg.err != nil {
			// o rascunho continua no Store; o detalhe já foi logado
			m.form.failed = true
			return m, nil
		}
		m.form.open = false
		m.saved = msg.kind
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.form.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case changedMsg:
		// o View lê o snapshot atual; só precisa voltar a esperar
		return m, m.waitChange()

	case loadedMsg:
		m.loading = false
		m.lastErr = msg.err
		m.lastAt = msg.at
		return m, nil
	}

	// blink do cursor
	if m.form.open {
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	tabs := make([]string, len(Tabs))
	for i, t := range Tabs {
		if i == m.active {
			tabs[i] = tabActive.Render(t.Title)
		} else {
			tabs[i] = tabInactive.Render(t.Title)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	if m.form.open {
		b.WriteString(m.formView())
		b.WriteString(helpStyle.Render(m.statusLine()))
		return b.String()
	}

	st := m.loader.Store.Snapshot()
	tab := Tabs[m.active]
	if len(tab.Kinds) == 0 {
		b.WriteString(render.Dashboard(st.Dashboard))
	}
	for i, k := range tab.Kinds {
		if i > 0 {
			b.WriteString("\n\n")
		}
		tb, err := render.Rows(st, k)
		if err != nil {
			b.WriteString(render.Error.Render(err.Error()))
			continue
		}
		b.WriteString(tb.Render(m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.statusLine()))
	return b.String()
}

// statusLine não mostra o erro em si; o detalhe vai para o log.
func (m Model) statusLine() string {
	if m.form.open {
		var status string
		switch {
		case m.form.sending:
			status = m.spinner.View() + " enviando…"
		case m.form.failed:
			status = "não foi possível salvar; revise os campos e tente de novo"
		}
		return status + "\n" + m.help.View(formKeys)
	}

	var status string
	switch {
	case m.saved != "":
		status = "cadastro salvo em " + m.saved.Title()
	case m.loading:
		status = m.spinner.View() + " carregando…"
	case m.lastErr != nil:
		status = "algumas coleções não atualizaram"
	case !m.lastAt.IsZero():
		status = "atualizado às " + m.lastAt.Format("15:04:05")
	}
	return status + "\n" + m.help.View(keys)
}

// Run abre o painel em tela cheia até o usuário sair.
func Run(loader *store.Loader, coord *submit.Coordinator, timeout time.Duration) error {
	p := tea.NewProgram(New(loader, coord, timeout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

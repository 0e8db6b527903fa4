package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Jump   key.Binding
	Reload key.Binding
	New    key.Binding
	NewAlt key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "próxima aba")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "aba anterior")),
	Jump:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7"), key.WithHelp("1-7", "ir para aba")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "novo cadastro")),
	NewAlt: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "nova licença")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "sair")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.New, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Option key.Binding
	Submit key.Binding
	Close  key.Binding
}

var formKeys = formKeyMap{
	Next:   key.NewBinding(key.WithKeys("down", "tab", "enter"), key.WithHelp("↓/enter", "próximo campo")),
	Prev:   key.NewBinding(key.WithKeys("up", "shift+tab"), key.WithHelp("↑", "campo anterior")),
	Option: key.NewBinding(key.WithKeys("left", "right", " "), key.WithHelp("←/→", "escolher opção")),
	Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "salvar")),
	Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fechar (mantém o rascunho)")),
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Option, k.Submit, k.Close}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

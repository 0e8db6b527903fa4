package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Werneck0live/gestao-terceirizados/internal/models"
)

type stat struct {
	label string
	value int64
	color lipgloss.Color
}

// Dashboard desenha os seis cartões do resumo, em duas linhas.
func Dashboard(s models.DashboardStats) string {
	stats := []stat{
		{"Total de Funcionários", s.TotalFuncionarios, PrimaryColor},
		{"Total de Clientes", s.TotalClientes, PrimaryColor},
		{"Total de Empresas", s.TotalEmpresas, PrimaryColor},
		{"Presentes Hoje", s.FuncionariosPresentesHoje, OKColor},
		{"Ausentes Hoje", s.FuncionariosAusentesHoje, ErrorColor},
		{"Atestados Ativos", s.AtestadosAtivos, WarnColor},
	}
	cards := make([]string, len(stats))
	for i, st := range stats {
		cards[i] = card.Render(
			Muted.Render(st.label) + "\n" + cardValue.Foreground(st.color).Render(Int(st.value)),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		Title.Render("Dashboard"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...),
	)
}

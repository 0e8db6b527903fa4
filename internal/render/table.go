package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Render desenha a tabela; width <= 0 deixa a largura livre.
func (t Table) Render(width int) string {
	if len(t.Rows) == 0 {
		return Title.Render(t.Title) + "\n" + Muted.Render("Nenhum registro.")
	}
	tb := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if width > 0 {
		tb = tb.Width(width)
	}
	return Title.Render(t.Title) + "\n" + tb.String()
}

package render

import "github.com/charmbracelet/lipgloss"

var (
	PrimaryColor = lipgloss.Color("#60A5FA")
	MutedColor   = lipgloss.Color("#9CA3AF")
	BorderColor  = lipgloss.Color("#6B7280")
	OKColor      = lipgloss.Color("#10B981")
	WarnColor    = lipgloss.Color("#F59E0B")
	ErrorColor   = lipgloss.Color("#F87171")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Error = lipgloss.NewStyle().Foreground(ErrorColor)
	OK    = lipgloss.NewStyle().Foreground(OKColor)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 2).
		MarginRight(1).
		Width(26)

	cardValue = lipgloss.NewStyle().Bold(true)
)

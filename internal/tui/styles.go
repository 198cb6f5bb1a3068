package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#2563eb")
	muted  = lipgloss.Color("#98a2b3")

	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101828")).MarginBottom(1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(muted)

	cursorStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	doneTitleStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(muted)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#667085")).MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#eaecf0")).
			Padding(1, 3).
			Width(60)
	quoteTextStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	authorStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#4f4f4f")).Align(lipgloss.Center).MarginTop(1)
	savedStyle     = lipgloss.NewStyle().Foreground(accent)

	helpStyle   = lipgloss.NewStyle().Foreground(muted).MarginTop(1)
	statusStyle = lipgloss.NewStyle().Foreground(accent)
)

package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorUser  = lipgloss.Color("86")  // Cyan
	colorBot   = lipgloss.Color("63")  // Purple
	colorBadge = lipgloss.Color("204") // Pink
	colorGray  = lipgloss.Color("240")
	colorWhite = lipgloss.Color("252")

	userBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorUser).
			Padding(0, 1)

	botBubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBot).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorBadge)

	timeStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorBot).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// Header renders the styled session banner.
func Header(text string) string {
	return headerStyle.Render(" " + text + " ")
}

// Status renders a dim status line (current personality, hints).
func Status(text string) string {
	return statusStyle.Render(text)
}

// Error renders a blocking error line. The session stays interactive.
func Error(text string) string {
	return errorStyle.Render("✗ " + text)
}

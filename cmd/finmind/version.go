package finmind

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Version information
const (
	Version = "1.0.0"
	Name    = "FinMind Wellbeing Companion"
	GitHub  = "https://github.com/finmindlabs/finmind"
)

// ASCII Logo with colors using lipgloss
var asciiLogo = `
    _____ _       __  ____           __
   / ____(_)___  /  |/  (_)___  ____/ /
  / /_  / / __ \/ /|_/ / / __ \/ __  /
 / __/ / / / / / /  / / / / / / /_/ /
/_/   /_/_/ /_/_/  /_/_/_/ /_/\__,_/
`

func printVersion() {
	// Styles
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")). // Cyan
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")). // Purple
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")) // White/Grey

	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // Blue
		Underline(true)

	// Print logo
	fmt.Println(logoStyle.Render(asciiLogo))
	fmt.Println()

	// Print version info
	fmt.Println(labelStyle.Render(Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(Version))
	fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), linkStyle.Render(GitHub))
	fmt.Println()
}

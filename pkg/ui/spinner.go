package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TypingModel is the "advisor is typing" indicator shown while a chat
// request is in flight.
type TypingModel struct {
	spinner  spinner.Model
	text     string
	quitting bool
}

func NewTyping(text string) TypingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return TypingModel{spinner: s, text: text}
}

func (m TypingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m TypingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m TypingModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.text)
}

// WithTyping shows the indicator while fn runs, then clears it.
func WithTyping(text string, fn func() error) error {
	p := tea.NewProgram(NewTyping(text))

	done := make(chan error, 1)
	go func() {
		done <- fn()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		// Fall back to blocking on fn without the indicator.
		return <-done
	}
	return <-done
}

package games

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2).
			Width(64)

	countdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("204"))
)

// tickMsg is a 1-second countdown tick. Ticks carry the question index
// they were scheduled for; a tick from a question that has already been
// answered is stale and dropped.
type tickMsg struct {
	index int
}

func tickFor(index int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{index: index}
	})
}

// CalmModel runs Calm-or-React: each scenario shows a 3-second countdown
// during which the response keys are disabled. Answering is only correct
// after the full cooldown, and only by choosing to wait.
type CalmModel struct {
	Session *Session

	bank      []CalmQuestion
	remaining int
	started   time.Time
	aborted   bool
}

func NewCalmModel() CalmModel {
	return CalmModel{
		Session:   NewSession(KindCalm, len(CalmBank)),
		bank:      CalmBank,
		remaining: int(CalmCooldown / time.Second),
		started:   time.Now(),
	}
}

func (m CalmModel) Init() tea.Cmd {
	return tickFor(0)
}

func (m CalmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.index != m.Session.Index || m.Session.Done() {
			return m, nil
		}
		if m.remaining > 0 {
			m.remaining--
		}
		if m.remaining > 0 {
			return m, tickFor(m.Session.Index)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "w", "a":
			choice := ChoiceWait
			if msg.String() == "a" {
				choice = ChoiceAct
			}
			return m.answer(choice)
		}
	}
	return m, nil
}

func (m CalmModel) answer(choice string) (tea.Model, tea.Cmd) {
	if m.Session.Done() {
		return m, tea.Quit
	}

	elapsed := time.Since(m.started)
	m.Session.Record(ScoreCalm(m.bank[m.Session.Index], choice, elapsed))

	if !m.Session.Advance() {
		return m, tea.Quit
	}

	m.remaining = int(CalmCooldown / time.Second)
	m.started = time.Now()
	return m, tickFor(m.Session.Index)
}

func (m CalmModel) View() string {
	if m.Session.Done() || m.aborted {
		return ""
	}

	q := m.bank[m.Session.Index]
	header := progressStyle.Render(fmt.Sprintf("Calm-or-React  %d/%d", m.Session.Index+1, m.Session.Total()))

	var footer string
	if m.remaining > 0 {
		footer = countdownStyle.Render(fmt.Sprintf("Take a breath... %d", m.remaining)) +
			dimStyle.Render("  (answering now counts against you)")
	} else {
		footer = promptStyle.Render("[w] wait it out    [a] act now")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n", header, questionStyle.Render(q.Scenario), footer,
		dimStyle.Render("q to quit"))
}

// Aborted reports whether the run was quit before completion.
func (m CalmModel) Aborted() bool {
	return m.aborted
}

// SpeedModel runs the Speed Test: a 2-second window per statement. Missing
// the deadline auto-records a timeout, which is never correct.
type SpeedModel struct {
	Session *Session

	bank      []SpeedQuestion
	remaining int
	started   time.Time
	aborted   bool
}

func NewSpeedModel() SpeedModel {
	return SpeedModel{
		Session:   NewSession(KindSpeed, len(SpeedBank)),
		bank:      SpeedBank,
		remaining: int(SpeedDeadline / time.Second),
		started:   time.Now(),
	}
}

func (m SpeedModel) Init() tea.Cmd {
	return tickFor(0)
}

func (m SpeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.index != m.Session.Index || m.Session.Done() {
			return m, nil
		}
		m.remaining--
		if m.remaining > 0 {
			return m, tickFor(m.Session.Index)
		}
		// Deadline missed: auto-submit a timeout.
		q := m.bank[m.Session.Index]
		m.Session.Record(ScoreSpeed(q, false, time.Since(m.started), true))
		return m.next()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "y", "n":
			if m.Session.Done() {
				return m, tea.Quit
			}
			q := m.bank[m.Session.Index]
			m.Session.Record(ScoreSpeed(q, msg.String() == "y", time.Since(m.started), false))
			return m.next()
		}
	}
	return m, nil
}

func (m SpeedModel) next() (tea.Model, tea.Cmd) {
	if !m.Session.Advance() {
		return m, tea.Quit
	}
	m.remaining = int(SpeedDeadline / time.Second)
	m.started = time.Now()
	return m, tickFor(m.Session.Index)
}

func (m SpeedModel) View() string {
	if m.Session.Done() || m.aborted {
		return ""
	}

	q := m.bank[m.Session.Index]
	header := progressStyle.Render(fmt.Sprintf("Speed Test  %d/%d", m.Session.Index+1, m.Session.Total()))
	footer := promptStyle.Render("[y] yes    [n] no") + "   " +
		countdownStyle.Render(fmt.Sprintf("%ds", m.remaining))

	return fmt.Sprintf("%s\n%s\n%s\n%s\n", header, questionStyle.Render(q.Statement), footer,
		dimStyle.Render("q to quit"))
}

func (m SpeedModel) Aborted() bool {
	return m.aborted
}

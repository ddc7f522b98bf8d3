package finmind

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finmindlabs/finmind/pkg/games"
	"github.com/finmindlabs/finmind/pkg/store"
	"github.com/finmindlabs/finmind/pkg/ui"
)

func handleGamesCommand(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printGamesUsage()
		return nil
	}

	order := []games.Kind{games.KindBias, games.KindCalm, games.KindSpeed}
	if len(args) > 0 {
		kind := games.Kind(args[0])
		switch kind {
		case games.KindBias, games.KindCalm, games.KindSpeed:
			order = []games.Kind{kind}
		default:
			printGamesUsage()
			return fmt.Errorf("unknown game: %s", args[0])
		}
	}

	var completed []store.GameResult
	for _, kind := range order {
		sess, aborted, err := a.runGame(kind)
		if err != nil {
			return err
		}
		if aborted {
			fmt.Println(ui.Status("Game exited — nothing was recorded."))
			return nil
		}

		result := store.NewGameResult(sess)
		if err := a.store.AppendResult(result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		completed = append(completed, result)

		fmt.Printf("\n%s: %d/%d — %s\n\n", kind.DisplayName(), sess.Score, sess.Total(),
			games.SummaryLabel(sess.Score, sess.Total()))
	}

	if len(completed) == len(order) && len(order) > 1 {
		printCombinedSummary(completed)
	}
	return nil
}

func (a *app) runGame(kind games.Kind) (*games.Session, bool, error) {
	fmt.Println(ui.Header(kind.DisplayName()))

	switch kind {
	case games.KindBias:
		return a.runBias()
	case games.KindCalm:
		model, err := tea.NewProgram(games.NewCalmModel()).Run()
		if err != nil {
			return nil, false, fmt.Errorf("game failed: %w", err)
		}
		m := model.(games.CalmModel)
		return m.Session, m.Aborted(), nil
	case games.KindSpeed:
		model, err := tea.NewProgram(games.NewSpeedModel()).Run()
		if err != nil {
			return nil, false, fmt.Errorf("game failed: %w", err)
		}
		m := model.(games.SpeedModel)
		return m.Session, m.Aborted(), nil
	}
	return nil, false, fmt.Errorf("unknown game: %s", kind)
}

// runBias plays Bias Spotter: untimed multiple choice over huh forms.
func (a *app) runBias() (*games.Session, bool, error) {
	sess := games.NewSession(games.KindBias, len(games.BiasBank))

	for !sess.Done() {
		q := games.BiasBank[sess.Index]
		title := fmt.Sprintf("(%d/%d) Which bias is this?\n\n%s", sess.Index+1, sess.Total(), q.Scenario)

		choice, err := ui.ReadSelection(q.Options, title)
		if err != nil {
			return sess, true, nil
		}

		outcome := games.ScoreBias(q, choice)
		sess.Record(outcome)
		if outcome.Correct {
			fmt.Println(ui.Status("✓ Correct — that's " + q.Bias + "."))
		} else {
			fmt.Println(ui.Status("✗ That was " + q.Bias + "."))
		}
		sess.Advance()
	}
	return sess, false, nil
}

func printCombinedSummary(results []store.GameResult) {
	score, total := 0, 0
	for _, r := range results {
		score += r.Score
		total += r.Total
	}

	fmt.Println(ui.Header("Combined Summary"))
	for _, r := range results {
		fmt.Printf("  %-14s %d/%d (%s)\n", r.Game.DisplayName(), r.Score, r.Total,
			games.SummaryLabel(r.Score, r.Total))
	}
	fmt.Printf("  %-14s %d/%d — %s\n", "Overall", score, total, games.SummaryLabel(score, total))
	fmt.Println()
	fmt.Println(ui.Status("Run `finmind report` to fold these into your wellbeing report."))
}

func printGamesUsage() {
	fmt.Println("usage: finmind games [-h] [bias|calm|speed]")
	fmt.Println("")
	fmt.Println("Runs all three decision-bias games in order, or just the named one.")
	fmt.Println("    bias                Bias Spotter: name the cognitive bias")
	fmt.Println("    calm                Calm-or-React: wait out the cooldown")
	fmt.Println("    speed               Speed Test: answer before the deadline")
}

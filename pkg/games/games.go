// Package games implements the three decision-bias mini-games: Bias
// Spotter (untimed multiple choice), Calm-or-React (cooldown before the
// buttons enable), and Speed Test (answer before the deadline). Each game
// is a linear state machine over an ordered question list.
package games

import "time"

// Kind names a mini-game.
type Kind string

const (
	KindBias  Kind = "bias"
	KindCalm  Kind = "calm"
	KindSpeed Kind = "speed"
)

// DisplayName returns the human-readable game title.
func (k Kind) DisplayName() string {
	switch k {
	case KindBias:
		return "Bias Spotter"
	case KindCalm:
		return "Calm-or-React"
	case KindSpeed:
		return "Speed Test"
	}
	return string(k)
}

const (
	// CalmCooldown is how long the Calm-or-React buttons stay disabled.
	// Answers before the cooldown are never correct.
	CalmCooldown = 3 * time.Second
	// SpeedDeadline is the Speed Test answer window. Missing it records
	// a timeout, which is never correct.
	SpeedDeadline = 2 * time.Second
)

// Outcome is the literal per-question record kept for the result log.
type Outcome struct {
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
	Correct  bool          `json:"correct"`
	Elapsed  time.Duration `json:"elapsed,omitempty"`
	TimedOut bool          `json:"timed_out,omitempty"`
}

// Session tracks one in-progress game run. It is transient: discarded on
// completion or exit, never persisted.
type Session struct {
	Kind    Kind
	Index   int
	Score   int
	Results []Outcome

	total    int
	answered bool
}

func NewSession(kind Kind, total int) *Session {
	return &Session{Kind: kind, total: total}
}

// Record stores the outcome for the current question. A second answer to
// the same question is ignored, so a reentrant double-click cannot score
// twice. Returns whether the outcome was accepted.
func (s *Session) Record(o Outcome) bool {
	if s.answered || s.Done() {
		return false
	}
	s.answered = true
	s.Results = append(s.Results, o)
	if o.Correct {
		s.Score++
	}
	return true
}

// Advance moves to the next question. Returns false once the run is done.
func (s *Session) Advance() bool {
	if !s.answered {
		return !s.Done()
	}
	s.Index++
	s.answered = false
	return !s.Done()
}

func (s *Session) Done() bool {
	return s.Index >= s.total
}

func (s *Session) Total() int {
	return s.total
}

// ScoreBias scores a Bias Spotter answer: correct iff the chosen label
// equals the scenario's tagged bias. No time pressure.
func ScoreBias(q BiasQuestion, choice string) Outcome {
	return Outcome{
		Question: q.Scenario,
		Answer:   choice,
		Correct:  choice == q.Bias,
	}
}

// ScoreCalm scores a Calm-or-React answer: correct only when the user
// waited out the full cooldown AND chose to wait.
func ScoreCalm(q CalmQuestion, choice string, elapsed time.Duration) Outcome {
	return Outcome{
		Question: q.Scenario,
		Answer:   choice,
		Correct:  elapsed >= CalmCooldown && choice == ChoiceWait,
		Elapsed:  elapsed,
	}
}

// ScoreSpeed scores a Speed Test answer: correct only when answered inside
// the deadline AND the boolean matches. A timeout is never correct.
func ScoreSpeed(q SpeedQuestion, answer bool, elapsed time.Duration, timedOut bool) Outcome {
	o := Outcome{
		Question: q.Statement,
		Elapsed:  elapsed,
		TimedOut: timedOut,
	}
	if timedOut {
		o.Answer = "timeout"
		return o
	}
	if answer {
		o.Answer = "yes"
	} else {
		o.Answer = "no"
	}
	o.Correct = elapsed <= SpeedDeadline && answer == q.Answer
	return o
}

// SummaryLabel maps a score fraction onto the fixed three-bucket scale.
func SummaryLabel(score, total int) string {
	if total <= 0 {
		return "developing"
	}
	pct := score * 100 / total
	switch {
	case pct >= 80:
		return "excellent"
	case pct >= 60:
		return "good"
	default:
		return "developing"
	}
}

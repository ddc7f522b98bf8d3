package games

import (
	"testing"
	"time"
)

func TestScoreCalmNeverCorrectBeforeCooldown(t *testing.T) {
	q := CalmBank[0]

	tests := []struct {
		name    string
		choice  string
		elapsed time.Duration
		correct bool
	}{
		{name: "wait too early", choice: ChoiceWait, elapsed: 1 * time.Second, correct: false},
		{name: "wait just under threshold", choice: ChoiceWait, elapsed: 2999 * time.Millisecond, correct: false},
		{name: "act too early", choice: ChoiceAct, elapsed: 500 * time.Millisecond, correct: false},
		{name: "wait at threshold", choice: ChoiceWait, elapsed: 3 * time.Second, correct: true},
		{name: "wait after threshold", choice: ChoiceWait, elapsed: 5 * time.Second, correct: true},
		{name: "act after threshold", choice: ChoiceAct, elapsed: 5 * time.Second, correct: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ScoreCalm(q, tt.choice, tt.elapsed)
			if o.Correct != tt.correct {
				t.Errorf("ScoreCalm(%q, %v).Correct = %v, want %v", tt.choice, tt.elapsed, o.Correct, tt.correct)
			}
		})
	}
}

func TestScoreSpeedTimeoutNeverCorrect(t *testing.T) {
	q := SpeedQuestion{Statement: "s", Answer: true}

	o := ScoreSpeed(q, true, 3*time.Second, true)
	if o.Correct {
		t.Error("A timeout must never be scored correct")
	}
	if o.Answer != "timeout" {
		t.Errorf("Expected timeout answer record, got %q", o.Answer)
	}
	if !o.TimedOut {
		t.Error("Expected TimedOut flag")
	}
}

func TestScoreSpeed(t *testing.T) {
	q := SpeedQuestion{Statement: "s", Answer: true}

	tests := []struct {
		name    string
		answer  bool
		elapsed time.Duration
		correct bool
	}{
		{name: "right answer in time", answer: true, elapsed: time.Second, correct: true},
		{name: "wrong answer in time", answer: false, elapsed: time.Second, correct: false},
		{name: "right answer at deadline", answer: true, elapsed: 2 * time.Second, correct: true},
		{name: "right answer too slow", answer: true, elapsed: 2*time.Second + time.Millisecond, correct: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := ScoreSpeed(q, tt.answer, tt.elapsed, false)
			if o.Correct != tt.correct {
				t.Errorf("ScoreSpeed(%v, %v).Correct = %v, want %v", tt.answer, tt.elapsed, o.Correct, tt.correct)
			}
		})
	}
}

func TestScoreBias(t *testing.T) {
	q := BiasQuestion{Scenario: "s", Options: []string{"Fear", "Anchoring"}, Bias: "Fear"}

	if !ScoreBias(q, "Fear").Correct {
		t.Error("Matching label should be correct")
	}
	if ScoreBias(q, "Anchoring").Correct {
		t.Error("Non-matching label should be incorrect")
	}
}

func TestSessionRecordIsIdempotentPerQuestion(t *testing.T) {
	sess := NewSession(KindBias, 2)

	if !sess.Record(Outcome{Correct: true}) {
		t.Fatal("First answer should be accepted")
	}
	if sess.Record(Outcome{Correct: true}) {
		t.Error("Second answer to the same question should be ignored")
	}
	if sess.Score != 1 {
		t.Errorf("Double-click scored twice: score=%d", sess.Score)
	}
	if len(sess.Results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(sess.Results))
	}
}

func TestSessionAdvanceToCompletion(t *testing.T) {
	sess := NewSession(KindSpeed, 2)

	sess.Record(Outcome{Correct: true})
	if !sess.Advance() {
		t.Fatal("Expected another question after the first")
	}
	sess.Record(Outcome{Correct: false})
	if sess.Advance() {
		t.Error("Expected run to be done after the last question")
	}
	if !sess.Done() {
		t.Error("Expected Done after final Advance")
	}
	if sess.Record(Outcome{Correct: true}) {
		t.Error("Answers after completion should be ignored")
	}
	if sess.Score != 1 {
		t.Errorf("Expected final score 1, got %d", sess.Score)
	}
}

func TestSummaryLabel(t *testing.T) {
	tests := []struct {
		score, total int
		expected     string
	}{
		{5, 5, "excellent"},
		{4, 5, "excellent"},
		{3, 5, "good"},
		{2, 5, "developing"},
		{0, 5, "developing"},
		{0, 0, "developing"},
	}

	for _, tt := range tests {
		if got := SummaryLabel(tt.score, tt.total); got != tt.expected {
			t.Errorf("SummaryLabel(%d, %d) = %q, want %q", tt.score, tt.total, got, tt.expected)
		}
	}
}

func TestBanksAreWellFormed(t *testing.T) {
	if len(BiasBank) != 5 || len(CalmBank) != 5 || len(SpeedBank) != 5 {
		t.Fatalf("Expected 5 questions per game, got %d/%d/%d", len(BiasBank), len(CalmBank), len(SpeedBank))
	}

	for i, q := range BiasBank {
		found := false
		for _, opt := range q.Options {
			if opt == q.Bias {
				found = true
			}
		}
		if !found {
			t.Errorf("Bias question %d: tagged bias %q not among options", i, q.Bias)
		}
	}
}

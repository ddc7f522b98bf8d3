// Package report assembles the self-contained HTML wellbeing report from
// stored game results and fetched chat history.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/finmindlabs/finmind/pkg/chat"
	"github.com/finmindlabs/finmind/pkg/games"
	"github.com/finmindlabs/finmind/pkg/store"
)

// StressThreshold is the fraction of emotion-tagged messages that must
// match a stress keyword before the report flags elevated stress.
const StressThreshold = 0.30

// stressKeywords are matched as lowercase substrings against the
// backend's emotion labels (Stress, Fear, Anxiety variants).
var stressKeywords = []string{"stress", "anxi", "fear"}

type gameStats struct {
	Name       string
	Runs       int
	AvgPercent int
	Label      string
}

type transcriptEntry struct {
	Sender      string
	HTML        template.HTML
	Emotion     string
	Personality string
	Timestamp   string
}

type reportData struct {
	Date         string
	HasResults   bool
	HasHistory   bool
	Games        []gameStats
	OverallLine  string
	OverallLabel string
	StressFlag   bool
	StressPct    int
	TaggedCount  int
	Advice       []string
	Transcript   []transcriptEntry
}

// Build renders the report document. Pure: no network, no filesystem.
// Empty inputs are valid; the report notes them instead of failing.
func Build(results []store.GameResult, history []chat.Message) (string, error) {
	data := reportData{
		Date:       time.Now().Format("January 2, 2006"),
		HasResults: len(results) > 0,
		HasHistory: len(history) > 0,
	}

	overallScore, overallTotal := 0, 0
	for _, kind := range []games.Kind{games.KindBias, games.KindCalm, games.KindSpeed} {
		runs := byGame(results, kind)
		if len(runs) == 0 {
			continue
		}

		data.Games = append(data.Games, gameStats{
			Name:       kind.DisplayName(),
			Runs:       len(runs),
			AvgPercent: averagePercent(runs),
			Label:      games.SummaryLabel(latest(runs).Score, latest(runs).Total),
		})

		overallScore += latest(runs).Score
		overallTotal += latest(runs).Total
	}

	if overallTotal > 0 {
		pct := overallScore * 100 / overallTotal
		data.OverallLine = fmt.Sprintf("%d / %d (%d%%)", overallScore, overallTotal, pct)
		data.OverallLabel = games.SummaryLabel(overallScore, overallTotal)
		data.Advice = recommendations(pct)
	}

	data.StressFlag, data.StressPct, data.TaggedCount = stressSignal(history)

	md := goldmark.New()
	for _, m := range history {
		entry := transcriptEntry{
			Sender:      string(m.Sender),
			Emotion:     m.Emotion,
			Personality: m.Personality,
			Timestamp:   m.Timestamp.Format("2006-01-02 15:04"),
		}
		if m.Sender == chat.SenderBot {
			var buf bytes.Buffer
			if err := md.Convert([]byte(m.Text), &buf); err != nil {
				return "", fmt.Errorf("failed to render message: %w", err)
			}
			entry.HTML = template.HTML(buf.String())
		} else {
			entry.HTML = template.HTML(template.HTMLEscapeString(m.Text))
		}
		data.Transcript = append(data.Transcript, entry)
	}

	var out bytes.Buffer
	if err := reportTemplate.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out.String(), nil
}

// Write saves the document to dir, named with the current date, and
// returns the written path.
func Write(dir, doc string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("finmind-report-%s.html", time.Now().Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func byGame(results []store.GameResult, kind games.Kind) []store.GameResult {
	var out []store.GameResult
	for _, r := range results {
		if r.Game == kind {
			out = append(out, r)
		}
	}
	return out
}

func latest(runs []store.GameResult) store.GameResult {
	return runs[len(runs)-1]
}

func averagePercent(runs []store.GameResult) int {
	sum := 0
	for _, r := range runs {
		if r.Total > 0 {
			sum += r.Score * 100 / r.Total
		}
	}
	return sum / len(runs)
}

// stressSignal flags elevated stress when at least StressThreshold of the
// emotion-tagged messages carry a stress keyword.
func stressSignal(history []chat.Message) (flagged bool, pct int, tagged int) {
	stressed := 0
	for _, m := range history {
		if m.Emotion == "" {
			continue
		}
		tagged++
		emotion := strings.ToLower(m.Emotion)
		for _, kw := range stressKeywords {
			if strings.Contains(emotion, kw) {
				stressed++
				break
			}
		}
	}
	if tagged == 0 {
		return false, 0, 0
	}
	pct = stressed * 100 / tagged
	return float64(stressed)/float64(tagged) >= StressThreshold, pct, tagged
}

// recommendations is the fixed rule table keyed on the overall percentage.
func recommendations(pct int) []string {
	switch {
	case pct >= 80:
		return []string{
			"Your decision discipline is strong. Keep following your plan and review it quarterly.",
			"Consider automating your savings so good habits survive busy weeks.",
		}
	case pct >= 60:
		return []string{
			"You handle most pressure well, but fast decisions trip you up. Use a 24-hour rule for unplanned purchases.",
			"Write down your reason before any buy or sell; revisit it the next day.",
		}
	default:
		return []string{
			"Impulse and bias are driving too many of your choices. Start with a fixed monthly budget and an emergency fund.",
			"Avoid market news for decisions; set calendar-based review points instead.",
			"Replay the mini-games weekly and watch the trend rather than any single score.",
		}
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>FinMind Report — {{.Date}}</title>
<style>
body { font-family: Georgia, serif; max-width: 760px; margin: 2rem auto; color: #222; }
h1 { border-bottom: 2px solid #4b6cb7; padding-bottom: .3rem; }
h2 { color: #4b6cb7; }
.score { font-size: 1.2rem; font-weight: bold; }
.flag { color: #b94b4b; font-weight: bold; }
.ok { color: #4b8b4b; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: .4rem .6rem; text-align: left; }
.msg { margin: .6rem 0; padding: .5rem .8rem; border-radius: 8px; }
.msg.user { background: #e8eefb; }
.msg.bot { background: #f3f3f3; }
.meta { font-size: .8rem; color: #777; }
</style>
</head>
<body>
<h1>FinMind Wellbeing Report</h1>
<p>Generated {{.Date}}</p>

<h2>Decision Games</h2>
{{if .HasResults}}
<p class="score">Overall Score: {{.OverallLine}} — {{.OverallLabel}}</p>
<table>
<tr><th>Game</th><th>Runs</th><th>Average</th><th>Latest rating</th></tr>
{{range .Games}}<tr><td>{{.Name}}</td><td>{{.Runs}}</td><td>{{.AvgPercent}}%</td><td>{{.Label}}</td></tr>
{{end}}</table>
{{else}}
<p>No game results recorded yet. Play the mini-games to build this section.</p>
{{end}}

<h2>Emotional Signal</h2>
{{if .TaggedCount}}
{{if .StressFlag}}<p class="flag">Elevated stress: {{.StressPct}}% of {{.TaggedCount}} emotion-tagged messages show stress or anxiety.</p>
{{else}}<p class="ok">No elevated stress signal ({{.StressPct}}% of {{.TaggedCount}} emotion-tagged messages).</p>{{end}}
{{else}}
<p>No emotion-tagged messages in the chat history.</p>
{{end}}

{{if .Advice}}
<h2>Recommendations</h2>
<ul>{{range .Advice}}<li>{{.}}</li>{{end}}</ul>
{{end}}

<h2>Chat Transcript</h2>
{{if .HasHistory}}
{{range .Transcript}}<div class="msg {{.Sender}}">
<div>{{.HTML}}</div>
<div class="meta">{{.Sender}} · {{.Timestamp}}{{if .Personality}} · Personality: {{.Personality}}{{end}}{{if .Emotion}} · Emotion: {{.Emotion}}{{end}}</div>
</div>
{{end}}
{{else}}
<p>No chat history available.</p>
{{end}}
</body>
</html>
`))

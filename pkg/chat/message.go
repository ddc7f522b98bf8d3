// Package chat holds the message model and the client for the remote
// financial-psychology chat backend.
package chat

import (
	"strings"
	"time"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one chat turn. Emotion and Personality are backend-supplied
// classification strings, present only on bot messages; empty means absent.
type Message struct {
	Text        string    `json:"text"`
	Sender      Sender    `json:"sender"`
	Emotion     string    `json:"emotion,omitempty"`
	Personality string    `json:"personality,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Reply is the normalized response envelope for both the text and voice
// endpoints. Older backend builds use a "response" key instead of "reply";
// normalization happens in the client so the rest of the code sees one shape.
type Reply struct {
	Text          string
	Personality   string
	Emotion       string
	AudioURL      string
	Transcription string
}

// BotMessage converts a reply into a message stamped now.
func (r Reply) BotMessage() Message {
	return Message{
		Text:        ExtractAdvice(r.Text),
		Sender:      SenderBot,
		Emotion:     r.Emotion,
		Personality: r.Personality,
		Timestamp:   time.Now(),
	}
}

// adviceLabels are the known prefixes the backend embeds in free-form
// replies. Order matters: the first label found wins.
var adviceLabels = []string{"financial_advice:", "response:"}

// ExtractAdvice pulls the advice text out of a labeled reply. If the reply
// contains a known label, only the trimmed text after the first matching
// label is returned; otherwise the reply is returned verbatim. This is a
// best-effort string search over unstructured text, not a parser.
func ExtractAdvice(reply string) string {
	for _, label := range adviceLabels {
		if idx := strings.Index(reply, label); idx >= 0 {
			return strings.TrimSpace(reply[idx+len(label):])
		}
	}
	return reply
}

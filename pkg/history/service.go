// Package history fetches the server-side message log and reconstructs
// conversations from it on the client.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/finmindlabs/finmind/pkg/chat"
)

// ConversationGap is the inactivity threshold between consecutive messages.
// A gap strictly greater than this starts a new conversation; a gap of
// exactly 30 minutes stays in the same one.
const ConversationGap = 30 * time.Minute

// Conversation is a contiguous run of messages with no internal gap
// exceeding ConversationGap. Derived, never stored.
type Conversation struct {
	Messages []chat.Message
}

func (c Conversation) Start() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[0].Timestamp
}

func (c Conversation) End() time.Time {
	if len(c.Messages) == 0 {
		return time.Time{}
	}
	return c.Messages[len(c.Messages)-1].Timestamp
}

// Title returns the first user line, truncated for list display. Falls
// back to the first message of any sender.
func (c Conversation) Title() string {
	for _, m := range c.Messages {
		if m.Sender == chat.SenderUser {
			return truncate(m.Text, 40)
		}
	}
	if len(c.Messages) > 0 {
		return truncate(c.Messages[0].Text, 40)
	}
	return "(empty)"
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// Service fetches the full message log for a user.
type Service struct {
	http *resty.Client
}

func NewService(baseURL string) *Service {
	return &Service{
		http: resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/")).SetTimeout(30 * time.Second),
	}
}

type historyEnvelope struct {
	Success  bool `json:"success"`
	Messages []struct {
		Text        string `json:"text"`
		Sender      string `json:"sender"`
		Emotion     string `json:"emotion"`
		Personality string `json:"personality"`
		Timestamp   string `json:"timestamp"`
	} `json:"messages"`
}

// Fetch returns the user's messages in server order. An empty or absent
// list is a valid empty history, not an error.
func (s *Service) Fetch(ctx context.Context, userID int64) ([]chat.Message, error) {
	var envelope historyEnvelope

	resp, err := s.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get(fmt.Sprintf("/chat/history/%d", userID))
	if err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("history request failed: %s", resp.Status())
	}

	messages := make([]chat.Message, 0, len(envelope.Messages))
	for _, m := range envelope.Messages {
		ts, err := time.Parse(time.RFC3339, m.Timestamp)
		if err != nil {
			// Tolerate timestamps without a zone, as older backends emit.
			ts, _ = time.Parse("2006-01-02T15:04:05", m.Timestamp)
		}
		messages = append(messages, chat.Message{
			Text:        m.Text,
			Sender:      chat.Sender(m.Sender),
			Emotion:     m.Emotion,
			Personality: m.Personality,
			Timestamp:   ts,
		})
	}
	return messages, nil
}

// GroupConversations partitions messages into conversations in a single
// forward pass. The partition is contiguous, non-overlapping, and
// order-preserving: concatenating the groups reproduces the input exactly.
// Input order is trusted; unsorted server data yields undefined grouping.
func GroupConversations(messages []chat.Message) []Conversation {
	if len(messages) == 0 {
		return nil
	}

	var conversations []Conversation
	current := Conversation{Messages: []chat.Message{messages[0]}}

	for _, m := range messages[1:] {
		prev := current.Messages[len(current.Messages)-1]
		if m.Timestamp.Sub(prev.Timestamp) > ConversationGap {
			conversations = append(conversations, current)
			current = Conversation{}
		}
		current.Messages = append(current.Messages, m)
	}

	return append(conversations, current)
}

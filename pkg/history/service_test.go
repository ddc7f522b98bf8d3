package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finmindlabs/finmind/pkg/chat"
)

// makeMessages builds a history with the given gaps between consecutive
// messages.
func makeMessages(t *testing.T, gaps ...time.Duration) []chat.Message {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	messages := []chat.Message{{Text: "m0", Sender: chat.SenderUser, Timestamp: base}}
	ts := base
	for i, gap := range gaps {
		ts = ts.Add(gap)
		sender := chat.SenderBot
		if i%2 == 1 {
			sender = chat.SenderUser
		}
		messages = append(messages, chat.Message{Text: "m" + string(rune('1'+i)), Sender: sender, Timestamp: ts})
	}
	return messages
}

func TestGroupConversationsPartitionsExactly(t *testing.T) {
	messages := makeMessages(t,
		time.Minute,
		2*time.Hour, // split
		5*time.Minute,
		45*time.Minute, // split
	)

	conversations := GroupConversations(messages)
	if len(conversations) != 3 {
		t.Fatalf("Expected 3 conversations, got %d", len(conversations))
	}

	// Concatenating the groups must reproduce the input exactly.
	var flattened []chat.Message
	for _, c := range conversations {
		flattened = append(flattened, c.Messages...)
	}
	if len(flattened) != len(messages) {
		t.Fatalf("Partition changed message count: %d != %d", len(flattened), len(messages))
	}
	for i := range messages {
		if flattened[i].Text != messages[i].Text || !flattened[i].Timestamp.Equal(messages[i].Timestamp) {
			t.Errorf("Message %d differs after grouping: %+v != %+v", i, flattened[i], messages[i])
		}
	}
}

func TestGroupConversationsBoundary(t *testing.T) {
	tests := []struct {
		name     string
		gap      time.Duration
		expected int
	}{
		{name: "exactly 30 minutes stays together", gap: 30 * time.Minute, expected: 1},
		{name: "30 minutes 1 second splits", gap: 30*time.Minute + time.Second, expected: 2},
		{name: "just under stays together", gap: 29*time.Minute + 59*time.Second, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversations := GroupConversations(makeMessages(t, tt.gap))
			if len(conversations) != tt.expected {
				t.Errorf("Gap %v: expected %d conversations, got %d", tt.gap, tt.expected, len(conversations))
			}
		})
	}
}

func TestGroupConversationsEmpty(t *testing.T) {
	if got := GroupConversations(nil); got != nil {
		t.Errorf("Expected nil for empty input, got %v", got)
	}
}

func TestGroupConversationsSingleMessage(t *testing.T) {
	conversations := GroupConversations(makeMessages(t))
	if len(conversations) != 1 || len(conversations[0].Messages) != 1 {
		t.Fatalf("Expected one conversation with one message, got %+v", conversations)
	}
}

func TestConversationTitlePrefersFirstUserLine(t *testing.T) {
	c := Conversation{Messages: []chat.Message{
		{Text: "Welcome back!", Sender: chat.SenderBot},
		{Text: "how do I stop panic selling", Sender: chat.SenderUser},
	}}
	if got := c.Title(); got != "how do I stop panic selling" {
		t.Errorf("Expected first user line as title, got %q", got)
	}
}

func TestFetchParsesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/history/42" {
			t.Errorf("Expected GET /chat/history/42, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"messages":[
			{"text":"hi","sender":"user","timestamp":"2026-03-01T09:00:00Z"},
			{"text":"hello","sender":"bot","emotion":"Calm","personality":"Neutral","timestamp":"2026-03-01T09:00:05Z"}
		]}`))
	}))
	defer server.Close()

	messages, err := NewService(server.URL).Fetch(context.Background(), 42)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(messages))
	}
	if messages[1].Sender != chat.SenderBot || messages[1].Emotion != "Calm" {
		t.Errorf("Bot metadata lost: %+v", messages[1])
	}
	if messages[0].Timestamp.IsZero() {
		t.Error("Expected parsed timestamp")
	}
}

func TestFetchEmptyHistoryIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"messages":[]}`))
	}))
	defer server.Close()

	messages, err := NewService(server.URL).Fetch(context.Background(), 7)
	if err != nil {
		t.Fatalf("Empty history should not error: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("Expected empty history, got %d messages", len(messages))
	}
}

package chat

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/finmindlabs/finmind/pkg/voice"
)

// FallbackText is shown as a bot bubble whenever a request fails. The
// backend is best-effort; the session must stay interactive regardless.
const FallbackText = "I'm having trouble reaching the advisor right now. Please try again in a moment."

// FallbackMessage returns the fixed bot bubble used on any network failure.
func FallbackMessage() Message {
	return Message{
		Text:      FallbackText,
		Sender:    SenderBot,
		Timestamp: time.Now(),
	}
}

// Client talks to the chat backend.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	base := strings.TrimSuffix(baseURL, "/")
	return &Client{
		http:    resty.New().SetBaseURL(base).SetTimeout(30 * time.Second),
		baseURL: base,
	}
}

// replyEnvelope accepts both field-naming conventions the backend has
// shipped: "reply" on current builds, "response" on older ones.
type replyEnvelope struct {
	Reply              string `json:"reply"`
	Response           string `json:"response"`
	Personality        string `json:"personality"`
	Emotion            string `json:"emotion"`
	AudioURL           string `json:"audio_url"`
	TranscribedMessage string `json:"transcribed_message"`
}

func (e replyEnvelope) normalize() Reply {
	text := e.Reply
	if text == "" {
		text = e.Response
	}
	return Reply{
		Text:          text,
		Personality:   e.Personality,
		Emotion:       e.Emotion,
		AudioURL:      e.AudioURL,
		Transcription: e.TranscribedMessage,
	}
}

// SendText posts a user message and returns the normalized reply. Callers
// convert any error into the fallback bubble; there is no retry.
func (c *Client) SendText(ctx context.Context, userID int64, text string) (Reply, error) {
	var envelope replyEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"message": text, "user_id": userID}).
		SetResult(&envelope).
		Post("/chat")
	if err != nil {
		return Reply{}, fmt.Errorf("chat request failed: %w", err)
	}
	if resp.IsError() {
		return Reply{}, fmt.Errorf("chat request failed: %s", resp.Status())
	}

	return envelope.normalize(), nil
}

// SendVoice uploads a recorded clip as multipart form data. The reply
// additionally carries the transcription the caller uses to replace the
// placeholder user bubble.
func (c *Client) SendVoice(ctx context.Context, userID int64, clip voice.Clip) (Reply, error) {
	var envelope replyEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("audio", "voice.webm", bytes.NewReader(clip.Data)).
		SetFormData(map[string]string{"user_id": strconv.FormatInt(userID, 10)}).
		SetResult(&envelope).
		Post("/chat/voice")
	if err != nil {
		return Reply{}, fmt.Errorf("voice request failed: %w", err)
	}
	if resp.IsError() {
		return Reply{}, fmt.Errorf("voice request failed: %s", resp.Status())
	}

	return envelope.normalize(), nil
}

// AudioURL resolves a reply's audio_url against the backend origin.
// Absolute URLs pass through unchanged.
func (c *Client) AudioURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

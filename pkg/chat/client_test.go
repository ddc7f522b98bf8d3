package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finmindlabs/finmind/pkg/voice"
)

func TestSendTextExtractsLabeledAdvice(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			t.Errorf("Expected POST /chat, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"reply": "financial_advice: save more"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.SendText(context.Background(), 42, "hello")
	if err != nil {
		t.Fatalf("SendText failed: %v", err)
	}

	if gotBody["message"] != "hello" {
		t.Errorf("Expected message 'hello' in request, got %v", gotBody["message"])
	}
	if gotBody["user_id"] != float64(42) {
		t.Errorf("Expected user_id 42 in request, got %v", gotBody["user_id"])
	}

	if msg := reply.BotMessage(); msg.Text != "save more" {
		t.Errorf("Expected rendered bubble 'save more', got %q", msg.Text)
	}
}

func TestSendTextAcceptsBothEnvelopeShapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "reply key", body: `{"reply":"A","personality":"Neutral"}`, expected: "A"},
		{name: "response key", body: `{"response":"B","emotion":"Calm"}`, expected: "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			reply, err := NewClient(server.URL).SendText(context.Background(), 1, "hi")
			if err != nil {
				t.Fatalf("SendText failed: %v", err)
			}
			if reply.Text != tt.expected {
				t.Errorf("Expected normalized text %q, got %q", tt.expected, reply.Text)
			}
		})
	}
}

func TestSendTextErrorOnNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).SendText(context.Background(), 1, "hi")
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
}

func TestSendTextErrorOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := NewClient(server.URL).SendText(context.Background(), 1, "hi")
	if err == nil {
		t.Fatal("Expected error for unreachable backend, got nil")
	}
}

func TestSendVoiceUploadsMultipartAndReturnsTranscription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/voice" {
			t.Errorf("Expected POST /chat/voice, got %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("Expected multipart form: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if got := r.FormValue("user_id"); got != "42" {
			t.Errorf("Expected user_id field '42', got %q", got)
		}
		file, header, err := r.FormFile("audio")
		if err != nil {
			t.Errorf("Expected audio file field: %v", err)
			http.Error(w, "missing audio", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "voice.webm" {
			t.Errorf("Expected filename voice.webm, got %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"reply":               "financial_advice: breathe first",
			"transcribed_message": "I want to sell everything",
			"audio_url":           "/audio/out.mp3",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	clip := voice.Clip{Data: []byte("fake-webm"), MIME: "audio/webm"}

	reply, err := client.SendVoice(context.Background(), 42, clip)
	if err != nil {
		t.Fatalf("SendVoice failed: %v", err)
	}

	if reply.Transcription != "I want to sell everything" {
		t.Errorf("Expected transcription, got %q", reply.Transcription)
	}
	if got := client.AudioURL(reply.AudioURL); got != server.URL+"/audio/out.mp3" {
		t.Errorf("Expected audio url resolved against origin, got %q", got)
	}
}

func TestAudioURL(t *testing.T) {
	client := NewClient("http://localhost:5000/")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "empty", path: "", expected: ""},
		{name: "relative with slash", path: "/audio/x.mp3", expected: "http://localhost:5000/audio/x.mp3"},
		{name: "relative without slash", path: "audio/x.mp3", expected: "http://localhost:5000/audio/x.mp3"},
		{name: "absolute passthrough", path: "https://cdn.example.com/x.mp3", expected: "https://cdn.example.com/x.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.AudioURL(tt.path); got != tt.expected {
				t.Errorf("AudioURL(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

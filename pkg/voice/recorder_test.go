package voice

import (
	"context"
	"errors"
	"testing"
)

// fakeSource buffers canned data and records lifecycle calls.
type fakeSource struct {
	data     []byte
	startErr error
	started  int
	stopped  int
}

func (f *fakeSource) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started++
	return nil
}

func (f *fakeSource) Stop() ([]byte, error) {
	f.stopped++
	return f.data, nil
}

func TestRecorderStartStopCycle(t *testing.T) {
	source := &fakeSource{data: []byte("opus-bytes")}
	rec := NewRecorder(source)

	if rec.Recording() {
		t.Fatal("New recorder should be idle")
	}

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !rec.Recording() {
		t.Fatal("Expected recording state after Start")
	}

	clip, err := rec.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if string(clip.Data) != "opus-bytes" {
		t.Errorf("Clip data lost: %q", clip.Data)
	}
	if clip.MIME != "audio/webm" {
		t.Errorf("Expected audio/webm clip, got %q", clip.MIME)
	}
	if rec.Recording() {
		t.Error("Expected idle state after Stop")
	}
	if source.started != 1 || source.stopped != 1 {
		t.Errorf("Unexpected source lifecycle: started=%d stopped=%d", source.started, source.stopped)
	}
}

func TestRecorderStartWhileRecording(t *testing.T) {
	rec := NewRecorder(&fakeSource{})

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := rec.Start(context.Background())
	if !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("Expected ErrAlreadyRecording, got %v", err)
	}
}

func TestRecorderStopWhileIdle(t *testing.T) {
	rec := NewRecorder(&fakeSource{})

	_, err := rec.Stop()
	if !errors.Is(err, ErrNotRecording) {
		t.Errorf("Expected ErrNotRecording, got %v", err)
	}
}

func TestRecorderSurfacesSourceFailure(t *testing.T) {
	rec := NewRecorder(&fakeSource{startErr: errors.New("no capture device")})

	err := rec.Start(context.Background())
	if err == nil {
		t.Fatal("Expected error when the source cannot start")
	}
	if rec.Recording() {
		t.Error("Failed Start must leave the recorder idle")
	}
}

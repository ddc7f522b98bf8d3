// Package voice wraps microphone capture and clip playback behind a
// start/stop recorder. Capture itself is delegated to an external command
// (ffmpeg by default) since the actual encoding is not this client's job.
package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrAlreadyRecording = errors.New("a recording is already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// Clip is one finalized recording session.
type Clip struct {
	Data []byte
	MIME string
}

// Source produces the raw encoded audio for one recording session.
// Implementations must support exactly one Start/Stop cycle at a time.
type Source interface {
	Start(ctx context.Context) error
	Stop() ([]byte, error)
}

// Recorder is the Idle -> Recording -> Idle state machine over a Source.
// Only one recording may be active; Start while recording fails with
// ErrAlreadyRecording and the toggle control treats that as a no-op.
type Recorder struct {
	mu        sync.Mutex
	source    Source
	recording bool
}

func NewRecorder(source Source) *Recorder {
	return &Recorder{source: source}
}

func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}

	if err := r.source.Start(ctx); err != nil {
		return fmt.Errorf("failed to start recording: %w", err)
	}

	r.recording = true
	return nil
}

// Stop finalizes the buffered audio into a single clip and releases the
// capture device.
func (r *Recorder) Stop() (Clip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return Clip{}, ErrNotRecording
	}
	r.recording = false

	data, err := r.source.Stop()
	if err != nil {
		return Clip{}, fmt.Errorf("failed to finalize recording: %w", err)
	}

	return Clip{Data: data, MIME: "audio/webm"}, nil
}

func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

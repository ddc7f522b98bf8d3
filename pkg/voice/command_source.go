package voice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CommandSource captures audio by running an external record command.
// The command template must contain a {file} placeholder for the output
// path and is expected to finish the file cleanly on SIGINT.
type CommandSource struct {
	template string
	cmd      *exec.Cmd
	outFile  string
}

func NewCommandSource(template string) *CommandSource {
	return &CommandSource{template: template}
}

func (s *CommandSource) Start(ctx context.Context) error {
	outFile := filepath.Join(os.TempDir(), fmt.Sprintf("finmind-rec-%d.webm", os.Getpid()))

	words, err := shellquote.Split(strings.ReplaceAll(s.template, "{file}", outFile))
	if err != nil {
		return fmt.Errorf("invalid record command: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("record command is empty")
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start %s (is it installed and is a microphone available?): %w", words[0], err)
	}

	s.cmd = cmd
	s.outFile = outFile
	return nil
}

func (s *CommandSource) Stop() ([]byte, error) {
	if s.cmd == nil {
		return nil, ErrNotRecording
	}

	// SIGINT lets the encoder flush its container trailer.
	_ = s.cmd.Process.Signal(os.Interrupt)
	_ = s.cmd.Wait()
	s.cmd = nil

	data, err := os.ReadFile(s.outFile)
	if err != nil {
		return nil, fmt.Errorf("record command produced no output: %w", err)
	}
	_ = os.Remove(s.outFile)

	return data, nil
}

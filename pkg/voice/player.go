package voice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kballard/go-shellquote"
)

// Player downloads a reply's audio clip and plays it through an external
// player command ({file} placeholder, ffplay by default). Playback is
// best-effort: callers log failures and move on.
type Player struct {
	template string
	http     *resty.Client
}

func NewPlayer(template string) *Player {
	return &Player{
		template: template,
		http:     resty.New().SetTimeout(30 * time.Second),
	}
}

func (p *Player) Play(ctx context.Context, url string) error {
	resp, err := p.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to fetch audio: %s", resp.Status())
	}

	file := filepath.Join(os.TempDir(), fmt.Sprintf("finmind-play-%d.audio", os.Getpid()))
	if err := os.WriteFile(file, resp.Body(), 0644); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	defer os.Remove(file)

	words, err := shellquote.Split(strings.ReplaceAll(p.template, "{file}", file))
	if err != nil {
		return fmt.Errorf("invalid play command: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("play command is empty")
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

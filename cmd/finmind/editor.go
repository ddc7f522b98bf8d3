package finmind

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are tried in PATH order when EDITOR is unset.
var fallbackEditors = []string{"nano", "vim", "vi"}

func openInEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		for _, e := range fallbackEditors {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found, set the EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Package editor launches the user's text editor to compose message
// bodies.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// Compose opens an editor on a temp file and returns the edited text.
// Resolution order for the editor command: the explicit argument, then
// $EVICT_EDITOR, then $EDITOR, then vi. Requires stdin to be a terminal;
// non-interactive callers should pass text as an argument instead.
func Compose(editorCmd, hint string) (string, error) {
	if editorCmd == "" {
		editorCmd = os.Getenv("EVICT_EDITOR")
	}
	if editorCmd == "" {
		editorCmd = os.Getenv("EDITOR")
	}
	if editorCmd == "" {
		editorCmd = "vi"
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("stdin is not a terminal; pass the text as an argument or with -f")
	}

	f, err := os.CreateTemp("", hint+"-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	// Honor multi-word editor settings like "code --wait".
	parts := strings.Fields(editorCmd)
	cmd := exec.Command(parts[0], append(parts[1:], name)...) // #nosec G204 - editor comes from user config
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running editor %q: %w", editorCmd, err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading edited text: %w", err)
	}
	return string(data), nil
}

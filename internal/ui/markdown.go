package ui

import (
	"os"

	glamour "charm.land/glamour/v2"
	"golang.org/x/term"
)

// RenderMarkdown renders an issue or comment body for terminal display.
// Returns the raw text when styling is off or rendering fails. Word wraps
// at terminal width, capped at 100 columns for readability.
func RenderMarkdown(markdown string) string {
	if !ShouldUseColor() {
		return markdown
	}

	const maxReadableWidth = 100
	wrapWidth := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		wrapWidth = w
	}
	if wrapWidth > maxReadableWidth {
		wrapWidth = maxReadableWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}

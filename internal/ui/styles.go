// Package ui provides terminal styling for evict CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive palette (light/dark variants).
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	ColorTag    = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
)

var (
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	TagStyle    = lipgloss.NewStyle().Foreground(ColorTag)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	TitleStyle  = lipgloss.NewStyle().Bold(true)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
)

// RenderAccent renders text with accent (blue) styling.
func RenderAccent(s string) string { return render(AccentStyle, s) }

// RenderTag renders a tag name with tag (green) styling.
func RenderTag(s string) string { return render(TagStyle, s) }

// RenderWarn renders text with warning (yellow) styling.
func RenderWarn(s string) string { return render(WarnStyle, s) }

// RenderMuted renders text with muted (gray) styling.
func RenderMuted(s string) string { return render(MutedStyle, s) }

// RenderTitle renders an issue title in bold.
func RenderTitle(s string) string { return render(TitleStyle, s) }

// RenderHeader renders a section header.
func RenderHeader(s string) string { return render(HeaderStyle, s) }

func render(style lipgloss.Style, s string) string {
	if !ShouldUseColor() {
		return s
	}
	return style.Render(s)
}

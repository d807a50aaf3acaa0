package ui

import (
	"os"
	"testing"
)

func TestShouldUseColor(t *testing.T) {
	origNoColor := os.Getenv("NO_COLOR")
	origCliColor := os.Getenv("CLICOLOR")
	origCliColorForce := os.Getenv("CLICOLOR_FORCE")
	defer func() {
		setEnv("NO_COLOR", origNoColor)
		setEnv("CLICOLOR", origCliColor)
		setEnv("CLICOLOR_FORCE", origCliColorForce)
	}()

	tests := []struct {
		name          string
		noColor       string
		cliColor      string
		cliColorForce string
		wantColor     bool
	}{
		{name: "NO_COLOR disables color", noColor: "1", wantColor: false},
		{name: "CLICOLOR=0 disables color", cliColor: "0", wantColor: false},
		{name: "CLICOLOR_FORCE enables color even in non-TTY", cliColorForce: "1", wantColor: true},
		{name: "NO_COLOR takes precedence over CLICOLOR_FORCE", noColor: "1", cliColorForce: "1", wantColor: false},
		{name: "no overrides falls back to TTY state", wantColor: false}, // test runs have no TTY
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("CLICOLOR")
			os.Unsetenv("CLICOLOR_FORCE")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.cliColor != "" {
				os.Setenv("CLICOLOR", tt.cliColor)
			}
			if tt.cliColorForce != "" {
				os.Setenv("CLICOLOR_FORCE", tt.cliColorForce)
			}

			if got := ShouldUseColor(); got != tt.wantColor {
				t.Errorf("ShouldUseColor() = %v, want %v", got, tt.wantColor)
			}
		})
	}
}

func TestRenderDegradesToPlainText(t *testing.T) {
	origNoColor := os.Getenv("NO_COLOR")
	defer setEnv("NO_COLOR", origNoColor)
	os.Setenv("NO_COLOR", "1")

	if got := RenderTag("urgent"); got != "urgent" {
		t.Errorf("RenderTag with color off = %q, want plain text", got)
	}
	if got := RenderMarkdown("# heading"); got != "# heading" {
		t.Errorf("RenderMarkdown with color off = %q, want raw text", got)
	}
}

// setEnv sets or unsets an environment variable.
func setEnv(key, value string) {
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}

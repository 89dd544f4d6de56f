package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mschirtzinger/jce/internal/config"
	"github.com/muesli/termenv"
)

func TestProfile_Never(t *testing.T) {
	if p := Profile(config.ColorNever, os.Stdout); p != termenv.Ascii {
		t.Errorf("Profile(never) = %v, want Ascii", p)
	}
}

func TestProfile_AutoNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if p := Profile(config.ColorAuto, f); p != termenv.Ascii {
		t.Errorf("Profile(auto) on a regular file = %v, want Ascii", p)
	}
}

func TestProfile_AlwaysHasColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	if p := Profile(config.ColorAlways, f); p == termenv.Ascii {
		t.Error("Profile(always) should never be Ascii")
	}
}

func TestRender_PlainWithoutColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	for name, render := range map[string]func(string) string{
		"pass":   RenderPass,
		"warn":   RenderWarn,
		"fail":   RenderFail,
		"accent": RenderAccent,
	} {
		if got := render("✓"); got != "✓" {
			t.Errorf("%s: got %q, want plain text", name, got)
		}
	}
}

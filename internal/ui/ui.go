// Package ui renders short status markers for terminal output.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mschirtzinger/jce/internal/config"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

// Configure selects the color profile for one of the config.Color* modes.
// In auto mode colors are used only when out is a terminal, and NO_COLOR is
// honored.
func Configure(mode string, out *os.File) {
	lipgloss.SetColorProfile(Profile(mode, out))
}

// Profile returns the color profile Configure would select.
func Profile(mode string, out *os.File) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		if p := termenv.NewOutput(out).EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	default:
		if out == nil || !term.IsTerminal(int(out.Fd())) {
			return termenv.Ascii
		}
		return termenv.NewOutput(out).EnvColorProfile()
	}
}

// RenderPass renders a success marker or message.
func RenderPass(s string) string { return passStyle.Render(s) }

// RenderWarn renders a warning marker or message.
func RenderWarn(s string) string { return warnStyle.Render(s) }

// RenderFail renders an error marker or message.
func RenderFail(s string) string { return failStyle.Render(s) }

// RenderAccent renders an informational highlight.
func RenderAccent(s string) string { return accentStyle.Render(s) }

// RenderMuted renders secondary detail such as file paths.
func RenderMuted(s string) string { return mutedStyle.Render(s) }

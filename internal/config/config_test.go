package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

// isolate points every config source at an empty temp environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, name := range []string{"JCE_EDITOR", "VISUAL", "EDITOR", "JCE_WATCH", "JCE_DEBOUNCE", "JCE_COLOR", "JCE_READ_TIMEOUT"} {
		t.Setenv(name, "")
	}
	return dir
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("jce", pflag.ContinueOnError)
	flags.String("editor", "", "")
	flags.Bool("no-watch", false, "")
	flags.String("log-file", "", "")
	flags.String("template", "", "")
	flags.String("color", "auto", "")
	flags.Bool("verbose", false, "")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := Default()
	if cfg.Editor != def.Editor || cfg.Watch != def.Watch || cfg.Debounce != def.Debounce ||
		cfg.ReadTimeout != def.ReadTimeout || cfg.Color != def.Color {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, def)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want none", cfg.Source)
	}
}

func TestLoad_EditorPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		file   string
		flag   string
		expect string
	}{
		{name: "default", expect: "nano"},
		{name: "config file", file: "editor: micro\n", expect: "micro"},
		{name: "EDITOR over file", env: map[string]string{"EDITOR": "vim"}, file: "editor: micro\n", expect: "vim"},
		{name: "VISUAL over EDITOR", env: map[string]string{"EDITOR": "vim", "VISUAL": "code --wait"}, expect: "code --wait"},
		{name: "JCE_EDITOR over VISUAL", env: map[string]string{"VISUAL": "code --wait", "JCE_EDITOR": "hx"}, expect: "hx"},
		{name: "flag over everything", env: map[string]string{"JCE_EDITOR": "hx"}, flag: "emacs", expect: "emacs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			configFile := ""
			if tt.file != "" {
				configFile = writeConfig(t, dir, tt.file)
			}

			flags := newFlags()
			if tt.flag != "" {
				if err := flags.Set("editor", tt.flag); err != nil {
					t.Fatalf("Failed to set flag: %v", err)
				}
			}

			cfg, err := Load(flags, configFile)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Editor != tt.expect {
				t.Errorf("Editor = %q, want %q", cfg.Editor, tt.expect)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, strings.Join([]string{
		"watch: false",
		"debounce: 250ms",
		"read_timeout: 2s",
		"log_file: /tmp/jce.log",
		"template: ~/templates/base.jsonc",
		"color: never",
	}, "\n"))

	cfg, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Watch {
		t.Error("Watch should be false")
	}
	if cfg.Debounce != 250*time.Millisecond {
		t.Errorf("Debounce = %v, want 250ms", cfg.Debounce)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("ReadTimeout = %v, want 2s", cfg.ReadTimeout)
	}
	if cfg.LogFile != "/tmp/jce.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Template != "~/templates/base.jsonc" {
		t.Errorf("Template = %q", cfg.Template)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want never", cfg.Color)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoad_DefaultConfigLocation(t *testing.T) {
	isolate(t)
	path := DefaultPath()
	if path == "" {
		t.Skip("no user config directory on this platform")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	writeConfig(t, filepath.Dir(path), "editor: kak\n")

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Editor != "kak" {
		t.Errorf("Editor = %q, want kak from %s", cfg.Editor, DefaultPath())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("JCE_WATCH", "false")
	t.Setenv("JCE_DEBOUNCE", "1s")

	cfg, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Watch {
		t.Error("JCE_WATCH=false should disable watching")
	}
	if cfg.Debounce != time.Second {
		t.Errorf("Debounce = %v, want 1s", cfg.Debounce)
	}
}

func TestLoad_NoWatchFlag(t *testing.T) {
	isolate(t)

	flags := newFlags()
	if err := flags.Set("no-watch", "true"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}

	cfg, err := Load(flags, "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Watch {
		t.Error("--no-watch should disable watching")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		dir := isolate(t)
		if _, err := Load(nil, filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("Load() should fail for a missing explicit config file")
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "color: rainbow\n")
		_, err := Load(nil, path)
		if err == nil || !strings.Contains(err.Error(), "color") {
			t.Errorf("expected color validation error, got %v", err)
		}
	})

	t.Run("invalid read timeout", func(t *testing.T) {
		dir := isolate(t)
		path := writeConfig(t, dir, "read_timeout: 0s\n")
		if _, err := Load(nil, path); err == nil {
			t.Error("Load() should reject a zero read_timeout")
		}
	})
}

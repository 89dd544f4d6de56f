// Package config resolves jce settings once per invocation.
//
// Sources, highest precedence first:
//
//  1. command-line flags
//  2. environment: JCE_EDITOR, VISUAL, EDITOR for the editor; JCE_<KEY> for
//     everything else (JCE_WATCH, JCE_DEBOUNCE, ...)
//  3. config file: --config, or config.yaml in the user config directory
//     (~/.config/jce/config.yaml on Linux)
//  4. defaults
//
// The result is a plain Config value; nothing re-reads the environment after
// Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mschirtzinger/jce/internal/editor"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds resolved settings for one session.
type Config struct {
	// Editor is the editor command line, e.g. "code --wait".
	Editor string

	// Watch enables live sync while the editor is open.
	Watch bool

	// Debounce is the minimum spacing between live syncs.
	Debounce time.Duration

	// ReadTimeout bounds retries when the scratch file is briefly unreadable.
	ReadTimeout time.Duration

	// LogFile, when set, receives all log output (rotated).
	LogFile string

	// Template is a file whose content seeds new documents.
	Template string

	// Color is one of ColorAuto, ColorAlways, ColorNever.
	Color string

	// Verbose echoes informational log lines to stderr.
	Verbose bool

	// Source is the config file that was read, if any.
	Source string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor:      editor.DefaultCommand,
		Watch:       true,
		Debounce:    100 * time.Millisecond,
		ReadTimeout: 500 * time.Millisecond,
		Color:       ColorAuto,
	}
}

// DefaultPath returns the config file looked up when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jce", "config.yaml")
}

// Load resolves settings from flags, environment and the config file.
// configFile may be empty to use DefaultPath; a missing default file is not
// an error, a missing explicit one is. flags may be nil.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("editor", def.Editor)
	v.SetDefault("watch", def.Watch)
	v.SetDefault("debounce", def.Debounce)
	v.SetDefault("read_timeout", def.ReadTimeout)
	v.SetDefault("log_file", "")
	v.SetDefault("template", "")
	v.SetDefault("color", def.Color)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("jce")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("editor", "JCE_EDITOR", "VISUAL", "EDITOR"); err != nil {
		return nil, fmt.Errorf("failed to bind editor environment: %w", err)
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range map[string]string{
			"editor":   "editor",
			"log_file": "log-file",
			"template": "template",
			"verbose":  "verbose",
			"color":    "color",
		} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("no-watch"); f != nil && f.Changed && f.Value.String() == "true" {
			v.Set("watch", false)
		}
	}

	cfg := &Config{
		Editor:      strings.TrimSpace(v.GetString("editor")),
		Watch:       v.GetBool("watch"),
		Debounce:    v.GetDuration("debounce"),
		ReadTimeout: v.GetDuration("read_timeout"),
		LogFile:     v.GetString("log_file"),
		Template:    v.GetString("template"),
		Color:       strings.ToLower(v.GetString("color")),
		Verbose:     v.GetBool("verbose"),
		Source:      v.ConfigFileUsed(),
	}
	if cfg.Editor == "" {
		cfg.Editor = def.Editor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative (got %v)", c.Debounce)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive (got %v)", c.ReadTimeout)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never (got %q)", c.Color)
	}
	return nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultPath()
		if configFile == "" {
			return nil
		}
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}
	return nil
}

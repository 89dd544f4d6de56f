package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mschirtzinger/jce/internal/config"
	"github.com/mschirtzinger/jce/internal/editor"
	"github.com/mschirtzinger/jce/internal/logging"
	"github.com/mschirtzinger/jce/internal/paths"
	"github.com/mschirtzinger/jce/internal/session"
	"github.com/mschirtzinger/jce/internal/sync"
	"github.com/mschirtzinger/jce/internal/ui"
	"github.com/spf13/cobra"
)

// env is what every subcommand needs after configuration is resolved.
type env struct {
	cfg  *config.Config
	logs *logging.Sink
}

func setup(cmd *cobra.Command) (*env, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, err
	}

	ui.Configure(cfg.Color, os.Stdout)

	logs := logging.New(logging.Options{
		File:    cfg.LogFile,
		Verbose: cfg.Verbose,
		Stderr:  cmd.ErrOrStderr(),
	})
	if cfg.Source != "" {
		logs.Logger("config").Printf("Loaded %s", cfg.Source)
	}
	return &env{cfg: cfg, logs: logs}, nil
}

func (e *env) syncer() sync.Syncer {
	return sync.NewWithConfig(&sync.Config{
		ReadTimeout: e.cfg.ReadTimeout,
		Logger:      e.logs.Logger("sync"),
	})
}

func runEdit(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.logs.Close()

	pair := paths.Resolve(args[0])
	ed := editor.Parse(e.cfg.Editor)

	s, err := session.New(pair, session.Options{
		Editor:       ed,
		Syncer:       e.syncer(),
		Watch:        e.cfg.Watch,
		Debounce:     e.cfg.Debounce,
		TemplatePath: e.cfg.Template,
		Logger:       e.logs.Logger("session"),
		WarnLogger:   e.logs.WarnLogger("watch"),
	})
	if err != nil {
		return err
	}

	e.logs.Logger("session").Printf("Editing %s with %s", pair.Commented, ed)
	result, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	commented, canonical := filepath.Base(pair.Commented), filepath.Base(pair.Canonical)
	switch result.Outcome {
	case session.OutcomeAbandoned:
		fmt.Fprintf(out, "%s %s not saved, nothing created\n", ui.RenderWarn("⚠"), commented)
	case session.OutcomeCreated:
		fmt.Fprintf(out, "%s Created %s and %s\n", ui.RenderPass("✓"), commented, canonical)
	default:
		fmt.Fprintf(out, "%s Saved %s %s %s\n", ui.RenderPass("✓"), commented, ui.RenderMuted("→"), canonical)
	}
	return nil
}

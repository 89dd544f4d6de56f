// Command jce edits a JSON file through a commented companion.
//
// Running "jce config.json" opens config.jsonc in the configured editor. Every
// save is checked and written back to config.json as plain, pretty-printed
// JSON, so tools that cannot read comments keep working.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mschirtzinger/jce/internal/editor"
	"github.com/mschirtzinger/jce/internal/sync"
	"github.com/mschirtzinger/jce/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jce <file>",
		Short: "Edit JSON with comments, keep strict JSON in sync",
		Long: `Edit a JSON file through a commented companion (.jsonc).

The commented file is what you edit; the plain .json file is regenerated
from it on every save with comments removed. Pass either name:

  jce settings.json
  jce settings.jsonc

If only settings.json exists, settings.jsonc is created from it. If neither
exists, a template is opened and nothing is written unless you save.

The editor is taken from --editor, JCE_EDITOR, VISUAL or EDITOR, in that
order, then from the config file, and falls back to nano.

A file named like a subcommand (sync, strip, version, help) must be given
with a path, e.g. "jce ./sync".`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEdit,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: <user config dir>/jce/config.yaml)")
	flags.String("log-file", "", "append log output to this file")
	flags.String("color", "auto", "colorize output: auto, always or never")
	flags.BoolP("verbose", "v", false, "show sync activity on stderr")

	rootCmd.Flags().StringP("editor", "e", "", "editor command, e.g. \"code --wait\"")
	rootCmd.Flags().String("template", "", "file used as the starting content for new documents")
	rootCmd.Flags().Bool("no-watch", false, "disable live sync; only sync after the editor exits")

	rootCmd.AddCommand(newSyncCmd(), newStripCmd(), newVersionCmd())
	return rootCmd
}

// reportError prints err as a single "Error:" line, plus a hint when the
// error says something about what to do next.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.RenderFail("Error:"), err)

	switch {
	case errors.Is(err, editor.ErrNonZeroExit):
		fmt.Fprintln(w, ui.RenderMuted(fmt.Sprintf("Editor exited with status %d; nothing was synced.", editor.ExitCode(err))))
	case sync.IsRetryable(err):
		fmt.Fprintln(w, ui.RenderMuted("This may be temporary; running the same command again may succeed."))
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

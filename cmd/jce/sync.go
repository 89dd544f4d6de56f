package main

import (
	"fmt"
	"os"

	"github.com/mschirtzinger/jce/internal/paths"
	"github.com/mschirtzinger/jce/internal/session"
	"github.com/mschirtzinger/jce/internal/ui"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <file>",
		Short: "Regenerate the plain JSON file from its commented companion",
		Long: `Regenerate the .json file from the .jsonc file without opening an editor.

Useful after editing the .jsonc file with another tool. The commented file
must exist; the plain file is created or replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.logs.Close()

			pair := paths.Resolve(args[0])
			info, err := os.Stat(pair.Commented)
			if err != nil || info.IsDir() {
				return fmt.Errorf("%w: %s", session.ErrNotFound, pair.Commented)
			}

			if err := e.syncer().SyncFile(cmd.Context(), pair.Commented, pair); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Synced %s %s %s\n",
				ui.RenderPass("✓"), pair.Commented, ui.RenderMuted("→"), pair.Canonical)
			return nil
		},
	}
}

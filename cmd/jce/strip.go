package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mschirtzinger/jce/internal/jsonc"
	"github.com/mschirtzinger/jce/internal/sync"
	"github.com/spf13/cobra"
)

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip <file>",
		Short: "Print a file as plain JSON with comments removed",
		Long: `Remove comments from a file, validate it and print the result as
pretty-printed JSON. Nothing is written to disk. Use "-" to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("%w: %w", sync.ErrIO, err)
			}

			out, err := jsonc.Canonicalize(string(data))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

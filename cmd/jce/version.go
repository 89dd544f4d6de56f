package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mschirtzinger/jce/internal/ui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the jce version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			mode, _ := cmd.Flags().GetString("color")
			ui.Configure(mode, os.Stdout)
			fmt.Fprintf(cmd.OutOrStdout(), "jce %s (%s, %s/%s)\n",
				ui.RenderAccent(Version), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

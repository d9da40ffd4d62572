package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	texteditor "github.com/jeremyd1/text-editor"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and build details",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := texteditor.ReadBuildInfo()
			fmt.Fprintln(cmd.OutOrStdout(), info)
			if info.GoVersion != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built with %s\n", info.GoVersion)
			}
		},
	}
}

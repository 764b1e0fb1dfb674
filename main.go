package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "skein [subcommand]",
	Short:        "skein 🧶\n a tiny stack language with signature-guarded definitions",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ResolveCmd)
	rootCmd.AddCommand(cmd.WatchCmd)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"smir/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "smir",
	Short: "Stable IR snapshot and lint toolchain",
	Long:  `smir inspects compiler pack files through a stable view of their IR`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(cratesCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

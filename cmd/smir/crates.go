package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"smir/internal/driver"
)

var cratesCmd = &cobra.Command{
	Use:   "crates [flags] file.pack",
	Short: "List the crates recorded in a pack",
	Long:  `Crates prints the local crate and every dependency crate of a pack`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCrates,
}

func init() {
	cratesCmd.Flags().String("find", "", "look up one crate by exact name")
}

func runCrates(cmd *cobra.Command, args []string) error {
	unit, err := driver.LoadPack(args[0])
	if err != nil {
		return err
	}

	find, err := cmd.Flags().GetString("find")
	if err != nil {
		return fmt.Errorf("failed to get find flag: %w", err)
	}
	if find != "" {
		crate, ok := unit.Session.FindCrate(find)
		if !ok {
			return fmt.Errorf("crate %q not found", find)
		}
		fmt.Fprintf(os.Stdout, "crate#%d %s local=%v\n", crate.ID, crate.Name, crate.IsLocal)
		return nil
	}

	localStyle := color.New(color.Bold)
	if !useColor(cmd, os.Stdout) {
		localStyle.DisableColor()
	}

	local := unit.Session.LocalCrate()
	fmt.Fprintf(os.Stdout, "crate#%d %s (local)\n", local.ID, localStyle.Sprint(local.Name))
	for _, crate := range unit.Session.ExternalCrates() {
		fmt.Fprintf(os.Stdout, "crate#%d %s\n", crate.ID, crate.Name)
	}
	return nil
}

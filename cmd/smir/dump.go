package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smir/internal/driver"
	"smir/internal/smir"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.pack",
	Short: "Dump the stable bodies of a pack",
	Long:  `Dump materializes every local body through the stable view and prints it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("item", "", "dump only the item with this name")
}

func runDump(cmd *cobra.Command, args []string) error {
	unit, err := driver.LoadPack(args[0])
	if err != nil {
		return err
	}

	only, err := cmd.Flags().GetString("item")
	if err != nil {
		return fmt.Errorf("failed to get item flag: %w", err)
	}

	dumped := 0
	for _, item := range unit.Session.AllLocalItems() {
		name, _ := describeItem(unit.Session, item)
		if only != "" && name != only {
			continue
		}
		body, err := unit.Session.MirBody(item)
		if err != nil {
			var convErr *smir.Error
			if errors.As(err, &convErr) && convErr.Kind == smir.NotYetImplemented {
				fmt.Fprintf(os.Stdout, "\nfn %s: <%v>\n", name, err)
				dumped++
				continue
			}
			return err
		}
		fmt.Fprintf(os.Stdout, "\nfn %s:\n", name)
		if err := smir.DumpBody(os.Stdout, &body, smir.DumpOptions{}); err != nil {
			return err
		}
		dumped++
	}

	if only != "" && dumped == 0 {
		return fmt.Errorf("item %q not found", only)
	}
	return nil
}

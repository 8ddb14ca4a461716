package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smir/internal/driver"
	"smir/internal/smir"
)

var itemsCmd = &cobra.Command{
	Use:   "items [flags] file.pack",
	Short: "List the body-bearing items of a pack's local crate",
	Args:  cobra.ExactArgs(1),
	RunE:  runItems,
}

func runItems(cmd *cobra.Command, args []string) error {
	unit, err := driver.LoadPack(args[0])
	if err != nil {
		return err
	}

	entry, hasEntry := unit.Session.EntryFn()
	for _, item := range unit.Session.AllLocalItems() {
		name, kind := describeItem(unit.Session, item)
		marker := ""
		if hasEntry && item == entry {
			marker = " (entry)"
		}
		fmt.Fprintf(os.Stdout, "item#%d %s %s%s\n", item.ID, kind, name, marker)
	}
	return nil
}

// describeItem reaches through the raw tables for the definition record;
// names and kinds are presentation detail the stable surface does not carry.
func describeItem(session *smir.Session, item smir.CrateItem) (name, kind string) {
	session.WithTables(func(t *smir.Tables) {
		def := t.Ctx.Def(t.ItemDefID(item))
		name = def.Name
		kind = def.Kind.String()
	})
	return name, kind
}

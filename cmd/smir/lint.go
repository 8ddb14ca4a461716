package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"smir/internal/diagfmt"
	"smir/internal/driver"
	"smir/internal/ui"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [file.pack...]",
	Short: "Run the lint passes over pack files",
	Long:  `Lint loads each pack, validates its bodies and runs the surface lint passes. Without arguments the packs come from smir.toml.`,
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	lintCmd.Flags().Int("jobs", 0, "parallel workers, 0 for GOMAXPROCS")
}

func runLint(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	packs := args
	if len(packs) == 0 {
		manifest, ok, err := loadProjectManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noSmirTomlMessage)
		}
		packs, err = resolveLintPacks(manifest)
		if err != nil {
			return err
		}
		if manifest.Config.Lint.MaxDiagnostics > 0 && !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			maxDiagnostics = manifest.Config.Lint.MaxDiagnostics
		}
		if manifest.Config.Lint.Jobs > 0 && !cmd.Flags().Changed("jobs") {
			jobs = manifest.Config.Lint.Jobs
		}
	}

	showProgress := !quiet && format == "pretty" && isTerminal(os.Stderr) && len(packs) > 1

	var events chan driver.Event
	var uiDone chan error
	if showProgress {
		events = make(chan driver.Event, len(packs)*4)
		uiDone = make(chan error, 1)
		program := tea.NewProgram(ui.NewProgressModel("linting packs", packs, events),
			tea.WithOutput(os.Stderr))
		go func() {
			_, err := program.Run()
			uiDone <- err
		}()
	}

	results, err := driver.LintPacks(context.Background(), packs, maxDiagnostics, jobs, events)
	if showProgress {
		<-uiDone
	}
	if err != nil {
		return err
	}

	hadErrors := false
	hadFindings := false
	for _, result := range results {
		if result.Bag.Len() == 0 {
			continue
		}
		hadFindings = true
		if result.Bag.HasErrors() {
			hadErrors = true
		}
		switch format {
		case "pretty":
			opts := diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stdout),
				Context:   1,
				ShowNotes: true,
				ShowFixes: true,
			}
			diagfmt.Pretty(os.Stdout, result.Bag, result.Files, opts)
		case "json":
			opts := diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				IncludeFixes:     true,
			}
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.Files, opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if !hadFindings && !quiet {
		fmt.Fprintf(os.Stdout, "%d packs clean\n", len(packs))
	}
	if hadErrors {
		os.Exit(1)
	}
	return nil
}

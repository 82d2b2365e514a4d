package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/cli"
	"github.com/example/curator/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "curator",
		Short:   "curator - load-order curation for mod ledgers",
		Version: version.String(),
		Long: `curator is a CLI tool for curating an ordered mod ledger.
It runs batch renames, protection tags, and index tags over the ledger
in strict load order, rebuilding the manifest once per batch.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.ExportCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.RenameCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.NoDeleteCmd())
	rootCmd.AddCommand(cli.IndexCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

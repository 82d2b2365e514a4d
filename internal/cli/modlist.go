package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/adapters/filesystem"
	"github.com/example/curator/internal/ctxutil"
	"github.com/example/curator/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all ledger entries in load order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator list")
			return wire.ModListAdapter().List(ctx)
		},
	}
}

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id-or-name]",
		Short: "Show details for a single entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator show")
			return wire.ModListAdapter().Show(ctx, args[0])
		},
	}
}

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Seed the ledger from a mod list file",
		Long: `Import ordered entry names into the ledger.

Accepts a plain text file (one name per line, top of the load order
first, # comments allowed) or a YAML manifest written by curator export.

Examples:
  curator import modlist.txt
  curator import manifest.yaml --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := filesystem.ReadNames(args[0])
			if err != nil {
				return err
			}

			ctx := ctxutil.WithCommand(context.Background(), "curator import")
			return wire.ModListAdapter().Import(ctx, names, replace)
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the existing ledger instead of appending")

	return cmd
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the ledger as a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator export")

			mods, err := wire.ModListService().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list entries: %w", err)
			}

			if err := filesystem.WriteManifest(args[0], mods); err != nil {
				return err
			}

			fmt.Printf("✓ Exported %d entries to %s\n", len(mods), args[0])
			return nil
		},
	}
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show ledger counters and manifest generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator status")
			return wire.ModListAdapter().Status(ctx)
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/ctxutil"
	"github.com/example/curator/internal/wire"
)

// RenameCmd returns the rename command
func RenameCmd() *cobra.Command {
	var (
		match      string
		replace    string
		dryRun     bool
		noFinalize bool
	)

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename matching entries in a single batch",
		Long: `Run a batch rename over the ledger.

The ledger is read once, entries are visited strictly in load order,
and each matching entry has --match replaced with --replace in its
name. The batch halts on the first failed rename; the manifest is
rebuilt exactly once at the end either way.

Examples:
  curator rename --match "Forest" --replace "Woods"
  curator rename --match "v1" --replace "v2" --dry-run
  curator rename --match "Old" --replace "New" --no-finalize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match == "" {
				return fmt.Errorf("--match is required")
			}

			ctx := ctxutil.WithCommand(context.Background(), "curator rename")
			return wire.BatchAdapter().Replace(ctx, match, replace, dryRun, noFinalize)
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Substring to match in entry names")
	cmd.Flags().StringVarP(&replace, "replace", "r", "", "Replacement text")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the ledger")
	cmd.Flags().BoolVar(&noFinalize, "no-finalize", false, "Skip the manifest rebuild after the batch")

	return cmd
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent batch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator history")
			return wire.BatchAdapter().History(ctx, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

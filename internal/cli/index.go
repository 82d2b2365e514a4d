package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/ctxutil"
	"github.com/example/curator/internal/wire"
)

// IndexCmd returns the index command
func IndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage numerical index tags",
		Long: `Assign or strip numerical index tags of the form [SSS.PPPPP].

Sections are delimited by separator entries and numbered from the top
of the load order; members are numbered from the top of each section.
Separators carry position 00000. Only [NoDelete] entries are indexed.`,
	}

	cmd.AddCommand(indexAddCmd())
	cmd.AddCommand(indexRemoveCmd())

	return cmd
}

func indexAddCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Assign index tags to all protected entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator index add")
			return wire.TagAdapter().AddIndexes(ctx, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the ledger")

	return cmd
}

func indexRemoveCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Strip index tags from all entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator index remove")
			return wire.TagAdapter().RemoveIndexes(ctx, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the ledger")

	return cmd
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/curator/internal/ctxutil"
	"github.com/example/curator/internal/wire"
)

// NoDeleteCmd returns the nodelete command
func NoDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodelete",
		Short: "Manage [NoDelete] protection tags",
		Long:  `Add or remove the [NoDelete] protection tag on ledger entries in a single batch.`,
	}

	cmd.AddCommand(noDeleteAddCmd())
	cmd.AddCommand(noDeleteRemoveCmd())

	return cmd
}

func noDeleteAddCmd() *cobra.Command {
	var (
		contains   string
		separators bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add [NoDelete] to matching entries",
		Long: `Tag matching entries with [NoDelete].

Separators are skipped unless --separators is given. Already-protected
entries are left untouched and counted as skipped.

Examples:
  curator nodelete add
  curator nodelete add --contains "Engine" --dry-run
  curator nodelete add --separators`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator nodelete add")
			return wire.TagAdapter().AddNoDelete(ctx, contains, separators, dryRun)
		},
	}

	cmd.Flags().StringVarP(&contains, "contains", "c", "", "Only tag entries whose clean name contains this text")
	cmd.Flags().BoolVar(&separators, "separators", false, "Include separator entries")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the ledger")

	return cmd
}

func noDeleteRemoveCmd() *cobra.Command {
	var (
		contains   string
		separators bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove [NoDelete] from matching entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxutil.WithCommand(context.Background(), "curator nodelete remove")
			return wire.TagAdapter().RemoveNoDelete(ctx, contains, separators, dryRun)
		},
	}

	cmd.Flags().StringVarP(&contains, "contains", "c", "", "Only untag entries whose clean name contains this text")
	cmd.Flags().BoolVar(&separators, "separators", false, "Include separator entries")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without touching the ledger")

	return cmd
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"clock_tui/internal"
	"clock_tui/internal/archive"
	"clock_tui/internal/config"
)

var errArchiveDisabled = errors.New("session archive is disabled")

func newHistoryCmd() *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "history",
		Short: "Print archived lap sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if !cfg.Database.Archive {
				return errArchiveDisabled
			}
			return printHistory(cmd.Context(), cmd, cfg.Database.Path, limit)
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of sessions to show (0 for all)")
	c.AddCommand(newHistoryDeleteCmd())
	return c
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete archived sessions by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if !cfg.Database.Archive {
				return errArchiveDisabled
			}

			repo, err := archive.OpenExisting(cfg.Database.Path)
			if err != nil {
				return errors.Wrap(err, "failed to open session archive")
			}
			defer repo.Close()

			for _, id := range args {
				if err := repo.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %s\n", id)
			}
			return nil
		},
	}
}

// printHistory never creates the archive; a missing file reads as empty.
func printHistory(ctx context.Context, cmd *cobra.Command, path string, limit int) error {
	out := cmd.OutOrStdout()

	repo, err := archive.OpenExisting(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(out, "No archived sessions.")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to open session archive")
	}
	defer repo.Close()

	sessions, err := repo.List(ctx, limit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No archived sessions.")
		return nil
	}
	fmt.Fprintln(out, internal.SessionTable(sessions, true))
	return nil
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/usecase"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "history",
		Short: "Inspect saved calculations in a workspace",
	}

	c.AddCommand(historyListCmd(opts), historyShowCmd(opts))
	return c
}

func historyListCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			store, err := ws.requireHistory()
			if err != nil {
				return err
			}

			refs, err := usecase.NewQueryHistory(store).List(limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no history yet)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				fmt.Fprintf(w, "- %s  %-8s  %s  %s\n", r.ID, r.Kind, r.CreatedAt.Format(time.RFC3339), r.Input)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum records to list (0 = all)")
	return cmd
}

func historyShowCmd(opts *rootOptions) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved calculation, or one value of it with --path",
		Example: `  toolbelt history show 3f2a9c1e
  toolbelt history show 3f2a9c1e --path '$.lcm.prime_factorization.combined.display'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			store, err := ws.requireHistory()
			if err != nil {
				return err
			}

			out, err := usecase.NewQueryHistory(store).Show(args[0], path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "JSONPath expression selecting part of the record")
	return cmd
}

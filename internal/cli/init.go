package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/infra/fsworkspace"
	"github.com/aalvaropc/toolbelt/internal/infra/logger"
	"github.com/aalvaropc/toolbelt/internal/usecase"
)

func initCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a toolbelt workspace (toolbelt.yaml, history/, batch/)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := strings.TrimSpace(opts.workspace)
			if len(args) == 1 {
				dir = args[0]
			}

			root, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(dir, force)
			if err != nil {
				return err
			}
			logger.For("cli").Info("workspace.initialized", "root", root, "force", force)
			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready: %s\n", root)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return cmd
}

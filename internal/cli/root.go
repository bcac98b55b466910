package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/infra/fsworkspace"
	"github.com/aalvaropc/toolbelt/internal/infra/logger"
	"github.com/aalvaropc/toolbelt/internal/infra/workspacefinder"
	"github.com/aalvaropc/toolbelt/internal/ui/tui"
)

type rootOptions struct {
	debug     bool
	workspace string

	closeLog func() error
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	err := cmd.ExecuteContext(ctx)
	opts.close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toolbelt",
		Short:         "Toolbelt: calculators for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.setupLogging()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Tools:                ws.tools,
				History:              ws.store,
				Limits:               ws.cfg.Limits,
				Logger:               logger.For("tui"),
				Debug:                opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .toolbelt/logs/toolbelt.log")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		lcmCmd(opts),
		playbackCmd(opts),
		toolsCmd(),
		historyCmd(opts),
		initCmd(opts),
		versionCmd(),
	)
	return cmd
}

// setupLogging routes the global logger into the workspace when there is one.
// Outside a workspace nothing is written.
func (o *rootOptions) setupLogging() {
	root, err := resolveWorkspaceRoot(o.workspace)
	if err != nil || root == "" {
		return
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: o.debug})
	if err != nil {
		return
	}
	o.closeLog = cleanup
}

func (o *rootOptions) close() {
	if o.closeLog != nil {
		_ = o.closeLog()
		o.closeLog = nil
	}
}

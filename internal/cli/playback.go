package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/app/report"
	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/logger"
	"github.com/aalvaropc/toolbelt/internal/usecase"
	"github.com/aalvaropc/toolbelt/internal/usecase/playback"
)

func playbackCmd(opts *rootOptions) *cobra.Command {
	var duration string
	var speed float64
	var format string
	var noSave bool

	c := &cobra.Command{
		Use:   "playback",
		Short: "Duration of a video or podcast at a different playback speed",
		Example: `  toolbelt playback --time 01:35:00 --speed 2.25
  toolbelt playback --time 45:30 --speed 1.5 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.For("cli")

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, ws.cfg)
			if err != nil {
				return err
			}

			store := ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewCalculatePlayback(store)
			res, id, err := uc.Execute(cmd.Context(), duration, speed)
			if err != nil && !usecase.IsSaveError(err) {
				log.Info("playback.rejected", "time", duration, "speed", speed, "err", err)
				return err
			}
			if err != nil {
				log.Error("history.save.failed", "err", err)
			} else {
				log.Info("playback.calculated", "time", duration, "speed", speed, "record_id", id)
			}

			in, _ := playback.ParseDuration(duration)
			in.Speed = speed
			if perr := printPlayback(cmd.OutOrStdout(), in, res, id, f); perr != nil {
				return perr
			}
			return err
		},
	}

	c.Flags().StringVarP(&duration, "time", "t", "", "Original duration as hh:mm:ss or mm:ss (required)")
	c.Flags().Float64VarP(&speed, "speed", "s", 1, fmt.Sprintf("Playback speed (%g to %g)", playback.MinSpeed, playback.MaxSpeed))
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from workspace config)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the calculation under history/")
	_ = c.MarkFlagRequired("time")

	c.AddCommand(playbackExamplesCmd())
	return c
}

func printPlayback(w io.Writer, in domain.PlaybackInput, res domain.PlaybackResult, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"record_id": id,
			"input":     in,
			"result":    res,
		}
		return enc.Encode(payload)
	default:
		report.Playback(w, in, res)
		if id != "" {
			fmt.Fprintf(w, "\nSaved: %s\n", id)
		}
		return nil
	}
}

func playbackExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show reference playback calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report.PlaybackExamples(cmd.OutOrStdout(), playback.Examples)
			return nil
		},
	}
}

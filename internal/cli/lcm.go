package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/toolbelt/internal/app/report"
	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/logger"
	"github.com/aalvaropc/toolbelt/internal/usecase"
)

func lcmCmd(opts *rootOptions) *cobra.Command {
	var format string
	var method string
	var noSave bool

	c := &cobra.Command{
		Use:   "lcm <numbers>",
		Short: "Least common multiple with prime factorization, division and multiples",
		Example: `  toolbelt lcm "12, 18"
  toolbelt lcm 4 6 --method division
  toolbelt lcm "9, 12" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.For("cli")

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}

			m, err := report.ParseMethod(method)
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

			input := strings.Join(args, ", ")
			uc := usecase.NewCalculateLCM(ws.cfg.Limits, store)

			res, id, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				if !usecase.IsSaveError(err) {
					log.Info("lcm.rejected", "input", input, "err", err)
					return err
				}
				// Calculation succeeded but the record was not saved.
				log.Error("history.save.failed", "err", err)
				_ = printLCM(cmd.OutOrStdout(), res, id, f, m)
				return err
			}

			log.Info("lcm.calculated", "input", input, "lcm", res.LCM, "record_id", id)
			return printLCM(cmd.OutOrStdout(), res, id, f, m)
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from workspace config)")
	c.Flags().StringVar(&method, "method", "all", "Derivation to show: all|prime|division|multiples")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the calculation under history/")

	c.AddCommand(lcmBatchCmd(opts))
	return c
}

func printLCM(w io.Writer, res domain.LCMResult, id string, format string, method report.Method) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"record_id": id,
			"result":    res,
		}
		return enc.Encode(payload)
	default:
		report.LCM(w, res, method)
		if id != "" {
			fmt.Fprintf(w, "\nSaved: %s\n", id)
		}
		return nil
	}
}

type batchLineJSON struct {
	Line  int    `json:"line"`
	Input string `json:"input"`
	LCM   int64  `json:"lcm,omitempty"`
	Error string `json:"error,omitempty"`
}

func lcmBatchCmd(opts *rootOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Calculate one LCM per line of a file (or stdin with -)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.For("cli")

			ws, err := loadWorkspace(opts.workspace)
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, ws.cfg)
			if err != nil {
				return err
			}

			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				file, err := os.Open(args[0])
				if err != nil {
					return &domain.OpError{Op: "lcm.batch.open", Kind: domain.KindNotFound, Path: args[0], Err: err}
				}
				defer file.Close()
				r = file
			}

			lines, err := usecase.ReadBatch(r)
			if err != nil {
				return err
			}

			items, err := usecase.NewBatchLCM(ws.cfg.Limits).Execute(cmd.Context(), lines)
			if err != nil {
				return err
			}

			failed := 0
			for _, it := range items {
				if it.Err != nil {
					failed++
				}
			}
			log.Info("lcm.batch.done", "lines", len(items), "failed", failed)

			if err := printBatch(cmd.OutOrStdout(), items, f); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("batch failed (%d of %d line(s) rejected)", failed, len(items))
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from workspace config)")
	return c
}

func printBatch(w io.Writer, items []usecase.BatchItem, format string) error {
	switch format {
	case "json":
		out := make([]batchLineJSON, 0, len(items))
		for _, it := range items {
			row := batchLineJSON{Line: it.Line, Input: it.Input}
			if it.Err != nil {
				row.Error = it.Err.Error()
			} else if it.Result != nil {
				row.LCM = it.Result.LCM
			}
			out = append(out, row)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		for _, it := range items {
			if it.Err != nil {
				fmt.Fprintf(w, "line %d: %s → error: %s\n", it.Line, it.Input, it.Err)
				continue
			}
			fmt.Fprintf(w, "line %d: %s → %d\n", it.Line, it.Input, it.Result.LCM)
		}
		return nil
	}
}

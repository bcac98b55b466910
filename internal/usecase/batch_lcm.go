package usecase

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/lcm"
)

// BatchLine is one input read from a batch file.
type BatchLine struct {
	Line  int
	Input string
}

// BatchItem is the outcome of one batch line. Exactly one of Result and Err is set.
type BatchItem struct {
	BatchLine
	Result *domain.LCMResult
	Err    error
}

// ReadBatch reads one input per line, skipping blank lines and # comments.
func ReadBatch(r io.Reader) ([]BatchLine, error) {
	var out []BatchLine
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, BatchLine{Line: n, Input: line})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchLCM struct {
	limits domain.LimitsConfig
}

func NewBatchLCM(limits domain.LimitsConfig) *BatchLCM {
	return &BatchLCM{limits: limits}
}

// Execute evaluates every line with at most limits.BatchWorkers in flight.
// Results keep input order. Invalid lines are reported per item; only context
// cancellation fails the batch.
func (uc *BatchLCM) Execute(ctx context.Context, lines []BatchLine) ([]BatchItem, error) {
	items := make([]BatchItem, len(lines))

	workers := uc.limits.BatchWorkers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ln := range lines {
		i, ln := i, ln
		items[i].BatchLine = ln

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := lcm.Evaluate(ln.Input, uc.limits)
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Result = &res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, ctx.Err()
}

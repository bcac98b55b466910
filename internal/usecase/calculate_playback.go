package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"github.com/aalvaropc/toolbelt/internal/usecase/playback"
)

type CalculatePlayback struct {
	store ports.HistoryStore
	now   func() time.Time
}

func NewCalculatePlayback(store ports.HistoryStore, opts ...Option) *CalculatePlayback {
	o := buildOptions(opts)
	return &CalculatePlayback{store: store, now: o.now}
}

// Execute reads a "hh:mm:ss" duration, applies speed and optionally saves a record.
func (uc *CalculatePlayback) Execute(ctx context.Context, duration string, speed float64) (domain.PlaybackResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlaybackResult{}, "", err
	}

	in, err := playback.ParseDuration(duration)
	if err != nil {
		return domain.PlaybackResult{}, "", err
	}
	in.Speed = speed

	res, err := playback.Calculate(in)
	if err != nil {
		return domain.PlaybackResult{}, "", err
	}

	if uc.store == nil {
		return res, "", nil
	}

	saved := res
	id, err := uc.store.Save(domain.CalculationRecord{
		Kind:      domain.RecordPlayback,
		Input:     fmt.Sprintf("%s @ %gx", playback.FormatClock(in.Hours, in.Minutes, in.Seconds), speed),
		CreatedAt: uc.now(),
		Playback:  &saved,
	})
	if err != nil {
		return res, "", &SaveError{Err: err}
	}
	return res, id, nil
}

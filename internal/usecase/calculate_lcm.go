package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
	"github.com/aalvaropc/toolbelt/internal/usecase/lcm"
)

type CalculateLCM struct {
	limits domain.LimitsConfig
	store  ports.HistoryStore
	now    func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the record timestamp source (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewCalculateLCM wires the LCM engine to an optional history store. A nil
// store disables saving.
func NewCalculateLCM(limits domain.LimitsConfig, store ports.HistoryStore, opts ...Option) *CalculateLCM {
	o := buildOptions(opts)
	return &CalculateLCM{
		limits: limits,
		store:  store,
		now:    o.now,
	}
}

// Execute parses and calculates input, then saves a record when a store is
// configured. A save failure still returns the computed result.
func (uc *CalculateLCM) Execute(ctx context.Context, input string) (domain.LCMResult, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.LCMResult{}, "", err
	}

	res, err := lcm.Evaluate(input, uc.limits)
	if err != nil {
		return domain.LCMResult{}, "", err
	}

	if uc.store == nil {
		return res, "", nil
	}

	saved := res
	id, err := uc.store.Save(domain.CalculationRecord{
		Kind:      domain.RecordLCM,
		Input:     strings.TrimSpace(input),
		CreatedAt: uc.now(),
		LCM:       &saved,
	})
	if err != nil {
		return res, "", &SaveError{Err: err}
	}
	return res, id, nil
}

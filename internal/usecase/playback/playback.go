// Package playback computes how long media takes to play at a given speed.
package playback

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

const (
	MaxHours = 999
	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Examples are the reference rows shown next to the calculator.
var Examples = []domain.PlaybackExample{
	{Time: "00:45:30", Speed: 1.5, CalculatedTime: "00:30:20"},
	{Time: "00:08:00", Speed: 1.25, CalculatedTime: "00:06:24"},
	{Time: "00:15:00", Speed: 0.75, CalculatedTime: "00:20:00"},
	{Time: "01:35:00", Speed: 2.25, CalculatedTime: "00:42:13"},
	{Time: "07:30:00", Speed: 1.5, CalculatedTime: "05:00:00"},
}

// Validate checks the input bounds.
func Validate(in domain.PlaybackInput) error {
	switch {
	case in.Hours < 0 || in.Hours > MaxHours:
		return outOfRange(fmt.Sprintf("hours must be between 0 and %d", MaxHours))
	case in.Minutes < 0 || in.Minutes > 59:
		return outOfRange("minutes must be between 0 and 59")
	case in.Seconds < 0 || in.Seconds > 59:
		return outOfRange("seconds must be between 0 and 59")
	case math.IsNaN(in.Speed) || in.Speed < MinSpeed || in.Speed > MaxSpeed:
		return outOfRange(fmt.Sprintf("speed must be between %g and %g", MinSpeed, MaxSpeed))
	}
	return nil
}

// Calculate returns the duration of in when played at in.Speed.
func Calculate(in domain.PlaybackInput) (domain.PlaybackResult, error) {
	if err := Validate(in); err != nil {
		return domain.PlaybackResult{}, err
	}

	total := float64(in.Hours*3600 + in.Minutes*60 + in.Seconds)
	adjusted := total / in.Speed

	saved := total - adjusted
	return domain.PlaybackResult{
		Hours:              int(math.Floor(adjusted / 3600)),
		Minutes:            int(math.Floor(math.Mod(adjusted, 3600) / 60)),
		Seconds:            int(math.Floor(math.Mod(adjusted, 60))),
		TimeSavedSeconds:   saved,
		TimeSavedFormatted: FormatSigned(saved),
	}, nil
}

// FormatClock renders h, m, s as HH:MM:SS.
func FormatClock(h, m, s int) string {
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatSigned renders a second count as ±HH:MM:SS. Zero is positive.
func FormatSigned(seconds float64) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
	}
	abs := math.Abs(seconds)

	h := int(math.Floor(abs / 3600))
	m := int(math.Floor(math.Mod(abs, 3600) / 60))
	s := int(math.Floor(math.Mod(abs, 60)))
	return sign + FormatClock(h, m, s)
}

// ParseDuration reads "hh:mm:ss" or "mm:ss" into the time fields of an input.
func ParseDuration(s string) (domain.PlaybackInput, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.PlaybackInput{}, invalidDuration(s)
	}

	vals := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return domain.PlaybackInput{}, invalidDuration(s)
		}
		vals[i] = v
	}

	var in domain.PlaybackInput
	if len(vals) == 3 {
		in.Hours, in.Minutes, in.Seconds = vals[0], vals[1], vals[2]
	} else {
		in.Minutes, in.Seconds = vals[0], vals[1]
	}
	return in, nil
}

func outOfRange(msg string) error {
	return &domain.InputError{Reason: domain.ReasonOutOfRange, Msg: msg}
}

func invalidDuration(s string) error {
	return &domain.InputError{
		Reason: domain.ReasonInvalid,
		Token:  s,
		Msg:    fmt.Sprintf("invalid duration %q (expected hh:mm:ss)", s),
	}
}

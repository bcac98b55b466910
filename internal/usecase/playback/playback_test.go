package playback

import (
	"errors"
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func TestCalculate_Examples(t *testing.T) {
	for _, ex := range Examples {
		in, err := ParseDuration(ex.Time)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", ex.Time, err)
		}
		in.Speed = ex.Speed

		res, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(%+v): %v", in, err)
		}
		if got := FormatClock(res.Hours, res.Minutes, res.Seconds); got != ex.CalculatedTime {
			t.Errorf("%s @ %gx = %s, want %s", ex.Time, ex.Speed, got, ex.CalculatedTime)
		}
	}
}

func TestCalculate_TimeSaved(t *testing.T) {
	res, err := Calculate(domain.PlaybackInput{Minutes: 45, Seconds: 30, Speed: 1.5})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.TimeSavedFormatted != "+00:15:10" {
		t.Fatalf("expected +00:15:10, got %s", res.TimeSavedFormatted)
	}

	res, err = Calculate(domain.PlaybackInput{Minutes: 15, Speed: 0.75})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.TimeSavedFormatted != "-00:05:00" {
		t.Fatalf("expected -00:05:00, got %s", res.TimeSavedFormatted)
	}
	if res.TimeSavedSeconds >= 0 {
		t.Fatalf("expected negative saving at 0.75x, got %v", res.TimeSavedSeconds)
	}
}

func TestCalculate_ZeroDurationIsPositive(t *testing.T) {
	res, err := Calculate(domain.PlaybackInput{Speed: 2})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.TimeSavedFormatted != "+00:00:00" {
		t.Fatalf("expected +00:00:00, got %s", res.TimeSavedFormatted)
	}
}

func TestValidate_Bounds(t *testing.T) {
	cases := []domain.PlaybackInput{
		{Hours: 1000, Speed: 1},
		{Minutes: 60, Speed: 1},
		{Seconds: -1, Speed: 1},
		{Minutes: 1, Speed: 0.05},
		{Minutes: 1, Speed: 10.5},
	}
	for _, in := range cases {
		err := Validate(in)
		if !errors.Is(err, domain.ErrOutOfRange) {
			t.Errorf("Validate(%+v): expected out of range, got %v", in, err)
		}
	}

	if err := Validate(domain.PlaybackInput{Hours: 999, Minutes: 59, Seconds: 59, Speed: 10}); err != nil {
		t.Fatalf("expected upper bounds to be inclusive, got %v", err)
	}
}

func TestParseDuration(t *testing.T) {
	in, err := ParseDuration("12:05")
	if err != nil {
		t.Fatalf("ParseDuration: %v", err)
	}
	if in.Hours != 0 || in.Minutes != 12 || in.Seconds != 5 {
		t.Fatalf("unexpected parse %+v", in)
	}

	for _, bad := range []string{"", "12", "a:b", "1:2:3:4", "-1:00"} {
		if _, err := ParseDuration(bad); !errors.Is(err, domain.ErrInvalidNumber) {
			t.Errorf("ParseDuration(%q): expected invalid, got %v", bad, err)
		}
	}
}

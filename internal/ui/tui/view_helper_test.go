package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/usecase/lcm"
)

func TestClampString(t *testing.T) {
	if got := clampString("abcdef", 3); got != "abc…" {
		t.Fatalf("unexpected %q", got)
	}
	if got := clampString("abc", 3); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
	if got := clampString("abc", 0); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestRenderDivisionTable(t *testing.T) {
	res, err := lcm.Calculate(domain.NumberList{12, 18})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	out := renderDivisionTable(DefaultTheme(), res.Numbers, res.DivisionMethod)

	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1") || strings.Contains(line, "9") {
			rows++
		}
	}
	// five data rows: the inputs, three intermediate rows and the ones
	if rows != 5 {
		t.Fatalf("expected 5 data rows, got %d:\n%s", rows, out)
	}
	if !strings.Contains(out, "12") || !strings.Contains(out, "18") {
		t.Fatalf("table should hold the inputs:\n%s", out)
	}
}

func TestHighlightLCM_RemovesBrackets(t *testing.T) {
	got := highlightLCM(DefaultTheme(), "12: 12, 24, [36]", 36)
	if strings.Contains(got, "[36]") {
		t.Fatalf("brackets not replaced: %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"input error verbatim", domain.NewInputError(domain.ReasonInvalid, "x"), "invalid number: x"},
		{"wrapped input error", fmt.Errorf("calc: %w", domain.ErrTooFewNumbers), "too few numbers"},
		{"timeout", fmt.Errorf("x: %w", context.DeadlineExceeded), "Calculation timed out"},
		{
			"record not found",
			&domain.OpError{Op: "historystore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Record not found",
		},
		{
			"workspace not found",
			&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Workspace not found",
		},
		{
			"yaml line",
			&domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: "/ws/toolbelt.yaml",
				Err:  errors.New("yaml: line 3: did not find expected key"),
			},
			"Invalid YAML at toolbelt.yaml line 3",
		},
		{
			"history write",
			&domain.OpError{Op: "historystore.write", Kind: domain.KindExecution, Err: errors.New("disk full")},
			"Could not save history (see logs)",
		},
		{
			"config without yaml detail",
			&domain.OpError{Op: "workspacefinder.loadconfig", Kind: domain.KindInvalidConfig, Err: errors.New("limits.max_value must be positive")},
			"Invalid config",
		},
		{"bare yaml error", errors.New("yaml: line 7: mapping values are not allowed"), "Invalid YAML line 7"},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("%s: userMessage = %q, want %q", c.name, got, c.want)
		}
	}
}

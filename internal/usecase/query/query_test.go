package query

import (
	"errors"
	"strings"
	"testing"
)

const record = `{
  "id": "abc",
  "kind": "lcm",
  "input": "12, 18",
  "lcm": {
    "numbers": [12, 18],
    "lcm": 36,
    "division_method": {"table": [{"divisor": 2}, {"divisor": 2}, {"divisor": 3}, {"divisor": 3}]},
    "list_multiples": {"lists": [{"number": 12, "truncated": false}]}
  },
  "big": 9699690
}`

func TestLookup_Scalars(t *testing.T) {
	cases := map[string]string{
		"$.lcm.lcm": "36",
		"$.input":   "12, 18",
		"$.lcm.list_multiples.lists[0].truncated": "false",
		"$.big": "9699690",
	}
	for expr, want := range cases {
		got, err := Lookup([]byte(record), expr)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", expr, err)
		}
		if got != want {
			t.Fatalf("Lookup(%s) = %q, want %q", expr, got, want)
		}
	}
}

func TestLookup_CompositeAsJSON(t *testing.T) {
	got, err := Lookup([]byte(record), "$.lcm.division_method.table[*].divisor")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "[2,2,3,3]" {
		t.Fatalf("expected [2,2,3,3], got %q", got)
	}

	got, err = Lookup([]byte(record), "$.lcm.numbers")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "[12,18]" {
		t.Fatalf("expected [12,18], got %q", got)
	}
}

func TestLookup_Errors(t *testing.T) {
	if _, err := Lookup([]byte(record), "  "); !errors.Is(err, ErrEmptyExpr) {
		t.Fatalf("expected ErrEmptyExpr, got %v", err)
	}
	if _, err := Lookup([]byte(record), "$.lcm.numbers[?(@ > 100)]"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for empty filter result, got %v", err)
	}
	if _, err := Lookup([]byte("nope"), "$.x"); err == nil || !strings.Contains(err.Error(), "not valid JSON") {
		t.Fatalf("expected invalid JSON error, got %v", err)
	}
	if _, err := Lookup([]byte(record), "$.missing"); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "historystore.write",
		Kind: KindExecution,
		Path: "/tmp/x.json",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindExecution {
		t.Fatalf("expected kind %s", KindExecution)
	}
	if want := "historystore.write: execution (path=/tmp/x.json): root"; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestIsKindForOpError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &OpError{Op: "x", Kind: KindInvalidConfig})

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match wrapped op error")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
}

func TestInputErrorMessages(t *testing.T) {
	cases := []struct {
		err  *InputError
		want string
	}{
		{NewInputError(ReasonTooFew, ""), "too few numbers"},
		{NewInputError(ReasonTooMany, ""), "too many numbers"},
		{NewInputError(ReasonInvalid, "abc"), "invalid number: abc"},
		{NewInputError(ReasonNonPositive, "0"), "non-positive number"},
		{NewInputError(ReasonTooLarge, "99999999"), "number too large: 99999999"},
		{NewInputError(ReasonOverflow, ""), "lcm exceeds 64-bit range"},
		{&InputError{Reason: ReasonOutOfRange, Msg: "speed must be between 0.1 and 10"}, "speed must be between 0.1 and 10"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Errorf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestInputErrorIsMatchesReason(t *testing.T) {
	err := fmt.Errorf("parse: %w", NewInputError(ReasonInvalid, "5.5"))

	if !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected errors.Is to match ErrInvalidNumber")
	}
	if errors.Is(err, ErrTooFewNumbers) {
		t.Fatalf("expected errors.Is not to match ErrTooFewNumbers")
	}
	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected input errors to classify as %s", KindInvalidInput)
	}
}

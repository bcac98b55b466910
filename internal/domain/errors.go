package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// InputError always classifies as KindInvalidInput.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	var ie *InputError
	if errors.As(err, &ie) {
		return kind == KindInvalidInput
	}
	return false
}

// InputReason names the validation rule an input broke.
type InputReason string

const (
	ReasonTooFew      InputReason = "too_few"
	ReasonTooMany     InputReason = "too_many"
	ReasonInvalid     InputReason = "invalid_number"
	ReasonNonPositive InputReason = "non_positive"
	ReasonTooLarge    InputReason = "too_large"
	ReasonOverflow    InputReason = "overflow"
	ReasonOutOfRange  InputReason = "out_of_range"
)

var (
	ErrTooFewNumbers  = &InputError{Reason: ReasonTooFew}
	ErrTooManyNumbers = &InputError{Reason: ReasonTooMany}
	ErrInvalidNumber  = &InputError{Reason: ReasonInvalid}
	ErrNonPositive    = &InputError{Reason: ReasonNonPositive}
	ErrTooLarge       = &InputError{Reason: ReasonTooLarge}
	ErrOverflow       = &InputError{Reason: ReasonOverflow}
	ErrOutOfRange     = &InputError{Reason: ReasonOutOfRange}
)

// InputError is the only error a calculation can produce. It is raised before
// any derivation runs, and its message is meant to be shown verbatim.
type InputError struct {
	Reason InputReason
	Token  string
	Msg    string // Optional: overrides the reason's default message
}

func NewInputError(reason InputReason, token string) *InputError {
	return &InputError{Reason: reason, Token: token}
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg != "" {
		return e.Msg
	}

	switch e.Reason {
	case ReasonTooFew:
		return "too few numbers"
	case ReasonTooMany:
		return "too many numbers"
	case ReasonInvalid:
		return "invalid number: " + e.Token
	case ReasonNonPositive:
		return "non-positive number"
	case ReasonTooLarge:
		return "number too large: " + e.Token
	case ReasonOverflow:
		return "lcm exceeds 64-bit range"
	case ReasonOutOfRange:
		if e.Token != "" {
			return "value out of range: " + e.Token
		}
		return "value out of range"
	default:
		return "invalid input"
	}
}

// Is matches on Reason so callers can compare against the Err* sentinels.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Reason == t.Reason
}

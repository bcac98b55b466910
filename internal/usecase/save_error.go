package usecase

import "errors"

// SaveError reports a calculation that succeeded but could not be recorded.
// The result returned alongside it is complete.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "save history: " + e.Err.Error() }

func (e *SaveError) Unwrap() error { return e.Err }

// IsSaveError reports whether err only concerns recording the result.
func IsSaveError(err error) bool {
	var se *SaveError
	return errors.As(err, &se)
}

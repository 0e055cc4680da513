package errors

import sterrors "errors"

// reportedError marks an error whose details were already written for
// the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user. ExitCode still sees
// the wrapped error.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// IsReported reports whether err was marked with Reported.
func IsReported(err error) bool {
	var r reportedError
	return sterrors.As(err, &r)
}

// Package errors defines application errors and exit code mapping.
package errors

import (
	sterrors "errors"
	"syscall"
)

var (
	// ErrUsage indicates a command usage failure.
	ErrUsage = sterrors.New("usage error")
	// ErrOpen indicates an input could not be opened.
	ErrOpen = sterrors.New("open input")
	// ErrChecksumFailed indicates at least one input did not verify.
	ErrChecksumFailed = sterrors.New("checksum verification failed")
	// ErrMalformed indicates a checksum line could not be parsed.
	ErrMalformed = sterrors.New("malformed checksum line")
	// ErrConfig indicates an invalid or unreadable configuration file.
	ErrConfig = sterrors.New("invalid configuration")
)

// ExitCode maps an error to a process exit code. Failures carrying an OS
// errno exit with that errno.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if sterrors.Is(err, ErrUsage) {
		return 2
	}

	var errno syscall.Errno
	if sterrors.As(err, &errno) && errno != 0 && int(errno) < 256 {
		return int(errno)
	}

	return 1
}

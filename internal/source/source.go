// Package source opens the byte streams named on the command line.
package source

import (
	"fmt"
	"io"
	"os"

	apperrors "sha256sum/internal/errors"
)

// StdinName is the argument that selects standard input.
const StdinName = "-"

// Input is an opened byte source with its display name.
type Input struct {
	Name   string
	Size   int64
	reader io.Reader
	closer io.Closer
}

// Read reads from the underlying source.
func (i *Input) Read(p []byte) (int, error) { return i.reader.Read(p) }

// Close releases the source. Standard input is never closed.
func (i *Input) Close() error {
	if i.closer == nil {
		return nil
	}
	return i.closer.Close()
}

// Opener opens inputs by name.
type Opener struct {
	Stdin io.Reader
}

// NewOSOpener returns an Opener reading "-" from the process stdin.
func NewOSOpener() Opener {
	return Opener{Stdin: os.Stdin}
}

// Open opens name for reading. Failures wrap ErrOpen and keep the
// underlying *os.PathError so callers can recover the errno. Size is -1
// when unknown.
func (o Opener) Open(name string) (*Input, error) {
	if name == StdinName {
		stdin := o.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return &Input{Name: name, Size: -1, reader: stdin}, nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrOpen, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %w", apperrors.ErrOpen, err)
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %w", apperrors.ErrOpen, &os.PathError{Op: "read", Path: name, Err: errIsDir})
	}
	return &Input{Name: name, Size: info.Size(), reader: file, closer: file}, nil
}

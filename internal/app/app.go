// Package app wires sha256sum application execution.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"sha256sum/internal/cli"
	apperrors "sha256sum/internal/errors"
)

// App wires CLI execution to process streams.
type App struct {
	out    io.Writer
	errOut io.Writer
	in     io.Reader
}

// New creates an App bound to the process standard streams.
func New() App {
	return App{out: os.Stdout, errOut: os.Stderr, in: os.Stdin}
}

// NewWithStreams creates an App bound to the given streams.
func NewWithStreams(out, errOut io.Writer, in io.Reader) App {
	return App{out: out, errOut: errOut, in: in}
}

// Run executes the application and returns a process exit code. An
// interrupt stops hashing at the next read.
func (a App) Run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCommand(a.out, a.errOut, a.in)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		if !apperrors.IsReported(err) {
			_, _ = fmt.Fprintf(a.errOut, "error: %v\n", err)
		}
		return apperrors.ExitCode(err)
	}

	return 0
}

package cli

import (
	"context"
	"fmt"
	"io"

	"sha256sum/internal/buildinfo"
	apperrors "sha256sum/internal/errors"
)

// NewVersionCommand creates the version subcommand.
func NewVersionCommand(out io.Writer) Command {
	return Command{
		name: "version",
		run: func(_ context.Context, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("version accepts no arguments: %w", apperrors.ErrUsage)
			}

			if _, err := fmt.Fprintln(out, buildinfo.Get().String()); err != nil {
				return fmt.Errorf("write version output: %w", err)
			}

			return nil
		},
	}
}

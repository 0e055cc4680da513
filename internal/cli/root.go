// Package cli implements sha256sum command-line parsing and commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"sha256sum/internal/source"
)

// Command represents an executable CLI command.
type Command struct {
	name string
	run  func(ctx context.Context, args []string) error
}

// Name returns the command name.
func (c Command) Name() string { return c.name }

// RootCommand handles argument parsing for the sha256sum CLI.
type RootCommand struct {
	out      io.Writer
	errOut   io.Writer
	opener   source.Opener
	commands []Command
	args     []string
}

// NewRootCommand creates the sha256sum root command. in backs the "-"
// input.
func NewRootCommand(out io.Writer, errOut io.Writer, in io.Reader) *RootCommand {
	root := &RootCommand{out: out, errOut: errOut, opener: source.Opener{Stdin: in}}
	root.commands = []Command{
		NewVersionCommand(out),
		{name: "sum", run: root.runSum},
		{name: "check", run: root.runCheck},
	}
	return root
}

// SetArgs sets command arguments.
func (r *RootCommand) SetArgs(args []string) { r.args = args }

// Commands returns configured subcommands.
func (r *RootCommand) Commands() []Command { return r.commands }

// Execute parses and runs commands.
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext parses and runs commands. Arguments that name no
// command are inputs to sum. Cancelling ctx stops reading inputs.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	if len(r.args) == 0 {
		return r.printHelp()
	}
	switch r.args[0] {
	case "-h", "--help", "help":
		return r.printHelp()
	}
	for _, command := range r.commands {
		if command.name == r.args[0] {
			return command.run(ctx, r.args[1:])
		}
	}
	return r.runSum(ctx, r.args)
}

func (r *RootCommand) printHelp() error {
	const help = "sha256sum prints or checks SHA-256 digests\n\nUsage:\n  sha256sum [flags] FILE...\n  sha256sum [command]\n\nAvailable Commands:\n  check    Verify digests listed in checksum files\n  sum      Print the digest of each FILE (default)\n  version  Print version information\n\nWith FILE of -, read standard input.\n\nFlags:\n  -h, --help  help for sha256sum\n"
	if _, err := fmt.Fprint(r.out, help); err != nil {
		return fmt.Errorf("write help output: %w", err)
	}
	return nil
}

// NewOSRootCommand creates a command wired to process standard streams.
func NewOSRootCommand() *RootCommand {
	return NewRootCommand(os.Stdout, os.Stderr, os.Stdin)
}

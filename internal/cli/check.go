package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"sha256sum/internal/batch"
	"sha256sum/internal/checksum"
	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/sanitize"
	"sha256sum/internal/source"
)

const maxChecksumLine = 1 << 20

type checkOptions struct {
	quiet         bool
	status        bool
	strict        bool
	warn          bool
	ignoreMissing bool
}

// checkTally counts outcomes across all checksum files.
type checkTally struct {
	malformed  int
	unreadable int
	mismatched int
}

func (r *RootCommand) runCheck(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	common := addCommonFlags(fs)
	var opts checkOptions
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "don't print OK for each verified file")
	fs.BoolVar(&opts.status, "status", false, "print nothing, report through the exit code")
	fs.BoolVar(&opts.strict, "strict", false, "fail on improperly formatted lines")
	fs.BoolVarP(&opts.warn, "warn", "w", false, "warn about improperly formatted lines")
	fs.BoolVar(&opts.ignoreMissing, "ignore-missing", false, "don't fail or report status for missing files")
	helped, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if helped {
		return r.printFlagHelp(fs, "sha256sum check [flags] CHECKSUM_FILE...")
	}

	s, err := r.loadSettings(fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	files := fs.Args()
	if len(files) == 0 {
		files = []string{source.StdinName}
	}

	var tally checkTally
	failed := false
	for _, file := range files {
		ok, err := r.checkFile(ctx, file, opts, s, &tally)
		if err != nil {
			return err
		}
		if !ok {
			failed = true
		}
	}

	if !opts.status {
		r.warnf(tally.malformed, "line is improperly formatted", "lines are improperly formatted")
		r.warnf(tally.unreadable, "listed file could not be read", "listed files could not be read")
		r.warnf(tally.mismatched, "computed checksum did NOT match", "computed checksums did NOT match")
	}
	if failed || tally.unreadable > 0 || tally.mismatched > 0 || (opts.strict && tally.malformed > 0) {
		return apperrors.Reported(fmt.Errorf("%d mismatched, %d unreadable, %d malformed: %w",
			tally.mismatched, tally.unreadable, tally.malformed, apperrors.ErrChecksumFailed))
	}
	return nil
}

// checkFile verifies every line of one checksum file. It returns false
// when the file itself yields no verification.
func (r *RootCommand) checkFile(ctx context.Context, file string, opts checkOptions, s settings, tally *checkTally) (bool, error) {
	lines, malformed, err := r.readChecksumFile(file, opts)
	if err != nil {
		if _, werr := fmt.Fprintf(r.errOut, "Unable to open %s: %s\n", file, failureReason(err)); werr != nil {
			return false, fmt.Errorf("write failure output: %w", werr)
		}
		return false, apperrors.Reported(fmt.Errorf("read checksum file %s: %w", file, err))
	}
	tally.malformed += malformed
	if len(lines) == 0 {
		if !opts.status {
			_, _ = fmt.Fprintf(r.errOut, "%s: no properly formatted SHA256 checksum lines found\n", file)
		}
		return false, nil
	}

	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = line.Name
	}

	verified := 0
	i := 0
	runErr := batch.Run(ctx, names, r.batchOptions(s), func(res batch.Result) error {
		line := lines[i]
		i++
		var verdict string
		switch {
		case res.Err != nil:
			if opts.ignoreMissing && errors.Is(res.Err, os.ErrNotExist) {
				return nil
			}
			tally.unreadable++
			verdict = "FAILED open or read"
			if !opts.status {
				_, _ = fmt.Fprintf(r.errOut, "%s: %s\n", res.Name, failureReason(res.Err))
			}
		case res.Digest != line.Digest:
			tally.mismatched++
			verified++
			verdict = "FAILED"
		default:
			verified++
			verdict = "OK"
		}
		s.logger.Debug("checked input", zap.String("name", res.Name), zap.String("result", verdict))
		if opts.status || (opts.quiet && verdict == "OK") {
			return nil
		}
		if _, err := fmt.Fprintln(r.out, checkResultName(res.Name)+": "+verdict); err != nil {
			return fmt.Errorf("write check output: %w", err)
		}
		return nil
	})
	if runErr != nil {
		return false, runErr
	}
	if opts.ignoreMissing && verified == 0 {
		if !opts.status {
			_, _ = fmt.Fprintf(r.errOut, "%s: no file was verified\n", file)
		}
		return false, nil
	}
	return true, nil
}

func (r *RootCommand) readChecksumFile(file string, opts checkOptions) ([]checksum.Line, int, error) {
	in, err := r.opener.Open(file)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = in.Close() }()

	var lines []checksum.Line
	malformed := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxChecksumLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if text == "" || text[0] == '#' {
			continue
		}
		line, err := checksum.ParseLine(text)
		if err != nil {
			malformed++
			if opts.warn && !opts.status {
				_, _ = fmt.Fprintf(r.errOut, "%s: %d: improperly formatted SHA256 checksum line\n", file, lineNo)
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return lines, malformed, nil
}

func (r *RootCommand) warnf(n int, singular, plural string) {
	switch {
	case n == 1:
		_, _ = fmt.Fprintf(r.errOut, "WARNING: 1 %s\n", singular)
	case n > 1:
		_, _ = fmt.Fprintf(r.errOut, "WARNING: %d %s\n", n, plural)
	}
}

// checkResultName escapes a name for a result line, prefixing it with a
// backslash when escaping was needed.
func checkResultName(name string) string {
	if escaped, ok := sanitize.EscapeName(name); ok {
		return `\` + escaped
	}
	return name
}

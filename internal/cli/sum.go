package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"sha256sum/internal/batch"
	"sha256sum/internal/checksum"
	"sha256sum/internal/config"
	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/jsonx"
	"sha256sum/internal/source"
)

type jsonRecord struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
	Bytes  uint64 `json:"bytes"`
	Blocks uint64 `json:"blocks"`
}

func (r *RootCommand) runSum(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("sum", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	common := addCommonFlags(fs)
	tag := fs.Bool("tag", false, "print BSD-style lines: SHA256 (FILE) = DIGEST")
	jsonOut := fs.Bool("json", false, "print one JSON object per input")
	helped, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if helped {
		return r.printFlagHelp(fs, "sha256sum sum [flags] FILE...")
	}
	if *tag && *jsonOut {
		return fmt.Errorf("--tag and --json are mutually exclusive: %w", apperrors.ErrUsage)
	}

	s, err := r.loadSettings(fs, common)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	format := s.cfg.Format
	switch {
	case *tag:
		format = config.FormatBSD
	case *jsonOut:
		format = config.FormatJSON
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{source.StdinName}
	}

	return batch.Run(ctx, names, r.batchOptions(s), func(res batch.Result) error {
		if res.Err != nil {
			if _, err := fmt.Fprintf(r.errOut, "Unable to open %s: %s\n", res.Name, failureReason(res.Err)); err != nil {
				return fmt.Errorf("write failure output: %w", err)
			}
			return apperrors.Reported(fmt.Errorf("hash %s: %w", res.Name, res.Err))
		}
		line, err := formatResult(format, res)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return fmt.Errorf("write digest output: %w", err)
		}
		return nil
	})
}

func formatResult(format string, res batch.Result) (string, error) {
	switch format {
	case config.FormatJSON:
		data, err := jsonx.Marshal(jsonRecord{
			Name:   res.Name,
			SHA256: checksum.FormatDigest(res.Digest),
			Bytes:  res.Bytes,
			Blocks: res.Blocks,
		})
		if err != nil {
			return "", fmt.Errorf("encode json output: %w", err)
		}
		return string(data), nil
	case config.FormatBSD:
		return checksum.Format(checksum.BSD, res.Name, res.Digest), nil
	default:
		return checksum.Format(checksum.GNU, res.Name, res.Digest), nil
	}
}

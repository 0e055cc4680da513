package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sha256sum/internal/batch"
	"sha256sum/internal/config"
	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/logging"
)

// commonFlags are shared by sum and check.
type commonFlags struct {
	config     *string
	jobs       *int
	bufferSize *int
	progress   *bool
	verbose    *bool
}

func addCommonFlags(fs *pflag.FlagSet) commonFlags {
	return commonFlags{
		config:     fs.String("config", "", "TOML config file (default $"+config.EnvPath+")"),
		jobs:       fs.IntP("jobs", "j", 1, "number of inputs hashed concurrently"),
		bufferSize: fs.Int("buffer-size", 64*1024, "read buffer size in bytes"),
		progress:   fs.Bool("progress", false, "report hashing progress on stderr"),
		verbose:    fs.BoolP("verbose", "v", false, "enable debug logging on stderr"),
	}
}

// settings merges the config file with explicitly set flags.
type settings struct {
	cfg    config.Config
	logger *zap.Logger
}

func (r *RootCommand) loadSettings(fs *pflag.FlagSet, flags commonFlags) (settings, error) {
	cfg, err := config.Load(config.ResolvePath(*flags.config))
	if err != nil {
		return settings{}, err
	}
	if fs.Changed("jobs") {
		cfg.Jobs = *flags.jobs
	}
	if fs.Changed("buffer-size") {
		cfg.BufferSize = *flags.bufferSize
	}
	if fs.Changed("progress") {
		cfg.Progress = *flags.progress
	}
	if *flags.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, fmt.Errorf("%w: %w", err, apperrors.ErrUsage)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return settings{}, err
	}
	logger := logging.New(r.errOut, level)
	logger.Debug("configuration loaded",
		zap.Int("jobs", cfg.Jobs),
		zap.Int("buffer_size", cfg.BufferSize),
		zap.String("format", cfg.Format),
		zap.Bool("progress", cfg.Progress),
	)
	return settings{cfg: cfg, logger: logger}, nil
}

func (r *RootCommand) batchOptions(s settings) batch.Options {
	opts := batch.Options{
		Jobs:       s.cfg.Jobs,
		BufferSize: s.cfg.BufferSize,
		Opener:     r.opener,
		Logger:     s.logger,
	}
	if s.cfg.Progress {
		opts.Progress = r.errOut
	}
	return opts
}

func parseFlags(fs *pflag.FlagSet, args []string) (helped bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, fmt.Errorf("parse %s flags: %w: %w", fs.Name(), err, apperrors.ErrUsage)
	}
	return false, nil
}

func (r *RootCommand) printFlagHelp(fs *pflag.FlagSet, usage string) error {
	if _, err := fmt.Fprintf(r.out, "Usage:\n  %s\n\nFlags:\n%s", usage, fs.FlagUsages()); err != nil {
		return fmt.Errorf("write %s help output: %w", fs.Name(), err)
	}
	return nil
}

// failureReason returns the OS message for err, like strerror(errno).
func failureReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

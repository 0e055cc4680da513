// Package batch hashes many inputs concurrently and reports them in
// argument order.
package batch

import (
	"bufio"
	"context"
	"io"
	"sync"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/zap"

	"sha256sum/internal/progress"
	"sha256sum/internal/sha256"
	"sha256sum/internal/source"
)

const defaultBufferSize = 64 * 1024

// Opener opens a named input.
type Opener interface {
	Open(name string) (*source.Input, error)
}

// Options configures a batch run.
type Options struct {
	// Jobs bounds how many inputs are hashed at once. Values below 1 mean 1.
	Jobs int
	// BufferSize is the read buffer placed in front of each source.
	BufferSize int
	Opener     Opener
	// Progress receives per-input progress lines when non-nil.
	Progress io.Writer
	Logger   *zap.Logger
}

// Result is the outcome for one input.
type Result struct {
	Name   string
	Digest [sha256.Size]byte
	Bytes  uint64
	Blocks uint64
	Err    error
}

// Run hashes every name and calls emit with each result in argument
// order. Each input gets its own parser and hash state. When emit
// returns an error, no further inputs are started, in-flight inputs are
// cancelled and Run returns that error once all workers have stopped.
func Run(ctx context.Context, names []string, opts Options, emit func(Result) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Opener == nil {
		opts.Opener = source.NewOSOpener()
	}
	if opts.Progress != nil {
		opts.Progress = &lockedWriter{w: opts.Progress}
	}
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]Result, len(names))
	ready := make([]chan struct{}, len(names))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	swg := sizedwaitgroup.New(jobs)
	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		for i, name := range names {
			i, name := i, name
			err := ctx.Err()
			if err == nil {
				err = swg.AddWithContext(ctx)
			}
			if err != nil {
				for j := i; j < len(names); j++ {
					results[j] = Result{Name: names[j], Err: err}
					close(ready[j])
				}
				return
			}
			go func() {
				defer swg.Done()
				results[i] = hashOne(ctx, name, opts)
				close(ready[i])
			}()
		}
	}()

	var emitErr error
	for i := range names {
		<-ready[i]
		if emitErr != nil {
			continue
		}
		if err := emit(results[i]); err != nil {
			emitErr = err
			cancel()
		}
	}
	<-dispatched
	swg.Wait()
	return emitErr
}

func hashOne(ctx context.Context, name string, opts Options) Result {
	in, err := opts.Opener.Open(name)
	if err != nil {
		return Result{Name: name, Err: err}
	}
	defer func() { _ = in.Close() }()

	var r io.Reader = contextReader{ctx: ctx, r: in}
	var reporter *progress.Reporter
	if opts.Progress != nil {
		var total uint64
		if in.Size > 0 {
			total = uint64(in.Size)
		}
		reporter = progress.NewReporter(opts.Progress, name, total)
		r = progress.NewReader(r, reporter)
	}
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	start := time.Now()
	parser := sha256.NewParser(bufio.NewReaderSize(r, bufferSize))
	state, err := sha256.Fold(parser)
	if err != nil {
		return Result{Name: name, Bytes: parser.Len(), Err: err}
	}
	if reporter != nil {
		reporter.Done(parser.Len())
	}
	opts.Logger.Debug("hashed input",
		zap.String("name", name),
		zap.Uint64("bytes", parser.Len()),
		zap.Uint64("blocks", parser.Blocks()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Result{Name: name, Digest: state.Bytes(), Bytes: parser.Len(), Blocks: parser.Blocks()}
}

// contextReader stops feeding bytes once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Package progress provides hashing throughput and ETA reporting helpers.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

// Event describes hashing status at a point in time.
type Event struct {
	Bytes      uint64
	Total      uint64
	InstantBps float64
	AverageBps float64
	ETA        time.Duration
	Elapsed    time.Duration
	Done       bool
	Name       string
}

// Reporter emits human-readable progress updates for one input.
type Reporter struct {
	w          io.Writer
	name       string
	total      uint64
	start      time.Time
	lastTick   time.Time
	lastBytes  uint64
	minTickGap time.Duration
	now        func() time.Time
}

// NewReporter creates a reporter with update throttling. A zero total
// means the input size is unknown.
func NewReporter(w io.Writer, name string, total uint64) *Reporter {
	return newReporter(w, name, total, time.Now)
}

func newReporter(w io.Writer, name string, total uint64, now func() time.Time) *Reporter {
	start := now()
	return &Reporter{w: w, name: name, total: total, start: start, lastTick: start, minTickGap: 150 * time.Millisecond, now: now}
}

// Update prints progress at throttled intervals.
func (r *Reporter) Update(bytes uint64) {
	now := r.now()
	if now.Sub(r.lastTick) < r.minTickGap && (r.total == 0 || bytes < r.total) {
		return
	}
	e := r.buildEvent(bytes, now, false)
	if e.Total == 0 {
		_, _ = fmt.Fprintf(r.w, "\rhashing %s %s inst:%s avg:%s", r.name, humanBytes(e.Bytes), humanRate(e.InstantBps), humanRate(e.AverageBps))
	} else {
		_, _ = fmt.Fprintf(r.w, "\rhashing %s %s/%s inst:%s avg:%s eta:%s", r.name, humanBytes(e.Bytes), humanBytes(e.Total), humanRate(e.InstantBps), humanRate(e.AverageBps), humanDuration(e.ETA))
	}
	r.lastTick = now
	r.lastBytes = bytes
}

// Done prints the final summary line.
func (r *Reporter) Done(bytes uint64) {
	e := r.buildEvent(bytes, r.now(), true)
	_, _ = fmt.Fprintf(r.w, "\rhashed %s %s in %s avg:%s\n", r.name, humanBytes(e.Bytes), humanDuration(e.Elapsed), humanRate(e.AverageBps))
}

func (r *Reporter) buildEvent(bytes uint64, now time.Time, done bool) Event {
	elapsed := now.Sub(r.start)
	if elapsed <= 0 {
		elapsed = time.Millisecond
	}
	chunkDur := now.Sub(r.lastTick)
	if chunkDur <= 0 {
		chunkDur = time.Millisecond
	}
	inst := float64(bytes-r.lastBytes) / chunkDur.Seconds()
	avg := float64(bytes) / elapsed.Seconds()
	remaining := uint64(0)
	if bytes < r.total {
		remaining = r.total - bytes
	}
	eta := time.Duration(0)
	if avg > 0 && remaining > 0 {
		eta = time.Duration(float64(remaining)/avg) * time.Second
	}
	return Event{Bytes: bytes, Total: r.total, InstantBps: inst, AverageBps: avg, ETA: eta, Elapsed: elapsed, Done: done, Name: r.name}
}

// Reader counts bytes read through it and reports them.
type Reader struct {
	r        io.Reader
	reporter *Reporter
	read     uint64
}

// NewReader wraps r so every read updates reporter.
func NewReader(r io.Reader, reporter *Reporter) *Reader {
	return &Reader{r: r, reporter: reporter}
}

// Read implements io.Reader.
func (pr *Reader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	if n > 0 {
		pr.read += uint64(n)
		pr.reporter.Update(pr.read)
	}
	return n, err
}

// Bytes returns the number of bytes read so far.
func (pr *Reader) Bytes() uint64 { return pr.read }

func humanBytes(v uint64) string {
	return humanize.Bytes(v)
}

func humanRate(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return fmt.Sprintf("%s/s", humanBytes(uint64(bps)))
}

func humanDuration(d time.Duration) string {
	if d < time.Second {
		return d.Truncate(time.Millisecond).String()
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String()
}

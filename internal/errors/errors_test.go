package errors

import (
	sterrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"usage", fmt.Errorf("bad flag: %w", ErrUsage), 2},
		{"checksum", fmt.Errorf("2 lines: %w", ErrChecksumFailed), 1},
		{"plain", sterrors.New("boom"), 1},
		{"errno", fmt.Errorf("open x: %w: %w", ErrOpen, &fs.PathError{Op: "open", Path: "x", Err: syscall.ENOENT}), int(syscall.ENOENT)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestExitCodeFromMissingFile(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected open error")
	}
	if got := ExitCode(fmt.Errorf("%w: %w", ErrOpen, err)); got == 0 || got == 2 {
		t.Fatalf("ExitCode(missing file) = %d", got)
	}
}

func TestReportedKeepsExitCode(t *testing.T) {
	err := Reported(fmt.Errorf("verify: %w", ErrChecksumFailed))
	if !IsReported(err) {
		t.Fatal("expected IsReported to be true")
	}
	if !sterrors.Is(err, ErrChecksumFailed) || ExitCode(err) != 1 {
		t.Fatalf("Reported hid the wrapped error: %v", err)
	}
	if IsReported(ErrUsage) || Reported(nil) != nil {
		t.Fatal("unexpected Reported behavior for plain or nil errors")
	}
}

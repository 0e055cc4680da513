package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/jsonx"
)

const (
	emptyHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcHex   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand(&stdout, &stderr, strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestSumDefaultsToGNULines(t *testing.T) {
	dir := t.TempDir()
	abc := writeFile(t, dir, "abc.txt", "abc")

	out, _, err := execute(t, "", abc)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != abcHex+"  "+abc+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSumReadsStdin(t *testing.T) {
	for _, args := range [][]string{{"sum"}, {"-"}} {
		out, _, err := execute(t, "abc", args...)
		if err != nil {
			t.Fatalf("%v: Execute() error = %v", args, err)
		}
		if out != abcHex+"  -\n" {
			t.Fatalf("%v: unexpected output %q", args, out)
		}
	}
}

func TestSumTagFormat(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty", "")
	out, _, err := execute(t, "", "sum", "--tag", empty)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "SHA256 ("+empty+") = "+emptyHex+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSumJSONFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fifty-six", strings.Repeat("z", 56))
	out, _, err := execute(t, "", "--json", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var record jsonRecord
	if err := jsonx.Unmarshal([]byte(strings.TrimSpace(out)), &record); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if record.Name != path || record.Bytes != 56 || record.Blocks != 2 || len(record.SHA256) != 64 {
		t.Fatalf("unexpected record %#v", record)
	}
}

func TestSumEscapesNames(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, `back\slash`, "abc")
	out, _, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	escaped := strings.ReplaceAll(path, `\`, `\\`)
	if out != `\`+abcHex+"  "+escaped+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSumStopsAtFirstUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	abc := writeFile(t, dir, "abc", "abc")
	missing := filepath.Join(dir, "missing")
	after := writeFile(t, dir, "after", "after")

	out, errOut, err := execute(t, "", abc, missing, after)
	if !errors.Is(err, apperrors.ErrOpen) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected open failure, got %v", err)
	}
	if !apperrors.IsReported(err) {
		t.Fatal("expected failure to be marked as reported")
	}
	if out != abcHex+"  "+abc+"\n" {
		t.Fatalf("expected only the first line, got %q", out)
	}
	if !strings.HasPrefix(errOut, "Unable to open "+missing+": ") {
		t.Fatalf("unexpected stderr %q", errOut)
	}
}

func TestSumJobsKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var want strings.Builder
	for i, body := range []string{"", "abc", "", "abc"} {
		path := writeFile(t, dir, string(rune('a'+i)), body)
		paths = append(paths, path)
		digest := emptyHex
		if body == "abc" {
			digest = abcHex
		}
		want.WriteString(digest + "  " + path + "\n")
	}
	out, _, err := execute(t, "", append([]string{"sum", "--jobs", "3"}, paths...)...)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != want.String() {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSumRejectsConflictingFormats(t *testing.T) {
	_, _, err := execute(t, "", "sum", "--tag", "--json", "-")
	if !errors.Is(err, apperrors.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestSumUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "sha256sum.toml", "format = \"bsd\"\n")
	out, _, err := execute(t, "abc", "sum", "--config", cfg, "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "SHA256 (-) = "+abcHex+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestSumRejectsInvalidJobs(t *testing.T) {
	_, _, err := execute(t, "", "sum", "--jobs", "0", "-")
	if !errors.Is(err, apperrors.ErrUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestSumVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := execute(t, "abc", "sum", "--verbose", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(errOut, "hashed input") || !strings.Contains(errOut, `"blocks": 1`) {
		t.Fatalf("expected debug log, got %q", errOut)
	}
}

package checksum

import (
	"errors"
	"strings"
	"testing"

	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/sha256"
)

const abcHex = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

func TestFormat(t *testing.T) {
	digest := sha256.SumBytes([]byte("abc"))
	tests := []struct {
		style Style
		name  string
		want  string
	}{
		{GNU, "abc.txt", abcHex + "  abc.txt"},
		{BSD, "abc.txt", "SHA256 (abc.txt) = " + abcHex},
		{GNU, "a\nb", `\` + abcHex + `  a\nb`},
		{BSD, `a\b`, `\SHA256 (a\\b) = ` + abcHex},
	}
	for _, tc := range tests {
		if got := Format(tc.style, tc.name, digest); got != tc.want {
			t.Fatalf("Format(%d, %q) = %q, want %q", tc.style, tc.name, got, tc.want)
		}
	}
}

func TestParseLineAcceptsFormattedLines(t *testing.T) {
	digest := sha256.SumBytes([]byte("abc"))
	for _, style := range []Style{GNU, BSD} {
		for _, name := range []string{"plain.txt", "with space.txt", "new\nline", `back\slash`, "paren) = x"} {
			line, err := ParseLine(Format(style, name, digest))
			if err != nil {
				t.Fatalf("ParseLine(Format(%d, %q)) error = %v", style, name, err)
			}
			if line.Name != name || line.Digest != digest || line.Style != style {
				t.Fatalf("unexpected parse %#v for %q", line, name)
			}
		}
	}
}

func TestParseLineBinaryMarker(t *testing.T) {
	line, err := ParseLine(strings.ToUpper(abcHex) + " *abc.bin")
	if err != nil {
		t.Fatalf("ParseLine() error = %v", err)
	}
	if !line.Binary || line.Name != "abc.bin" || FormatDigest(line.Digest) != abcHex {
		t.Fatalf("unexpected line %#v", line)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"not a checksum",
		abcHex + "  ",
		abcHex + "-+abc",
		abcHex[:63] + "   abc",
		"zz" + abcHex[2:] + "  abc",
		"SHA256 (abc) " + abcHex,
		"SHA256 () = " + abcHex,
		`\` + abcHex + `  bad\q`,
	} {
		if _, err := ParseLine(text); !errors.Is(err, apperrors.ErrMalformed) {
			t.Fatalf("ParseLine(%q) error = %v, want ErrMalformed", text, err)
		}
	}
}

func TestParseDigestLength(t *testing.T) {
	if _, err := ParseDigest("abcd"); !errors.Is(err, apperrors.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

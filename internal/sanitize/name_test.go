package sanitize

import (
	"errors"
	"testing"
)

func TestEscapeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		escaped bool
	}{
		{"plain.txt", "plain.txt", false},
		{`dir\file`, `dir\\file`, true},
		{"two\nlines", `two\nlines`, true},
		{"", "", false},
	}
	for _, tc := range tests {
		got, escaped := EscapeName(tc.in)
		if got != tc.want || escaped != tc.escaped {
			t.Fatalf("EscapeName(%q) = %q, %v; want %q, %v", tc.in, got, escaped, tc.want, tc.escaped)
		}
	}
}

func TestUnescapeNameRoundTrip(t *testing.T) {
	for _, name := range []string{"plain", `a\b`, "x\ny", `\` + "\n" + `\`} {
		escaped, _ := EscapeName(name)
		got, err := UnescapeName(escaped)
		if err != nil {
			t.Fatalf("UnescapeName(%q) error = %v", escaped, err)
		}
		if got != name {
			t.Fatalf("round trip of %q gave %q", name, got)
		}
	}
}

func TestUnescapeNameRejectsBadSequences(t *testing.T) {
	for _, in := range []string{`trailing\`, `bad\t`} {
		if _, err := UnescapeName(in); !errors.Is(err, ErrBadEscape) {
			t.Fatalf("UnescapeName(%q) error = %v, want ErrBadEscape", in, err)
		}
	}
}

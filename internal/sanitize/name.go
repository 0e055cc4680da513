// Package sanitize escapes display names for checksum lines.
//
// A name containing a backslash or newline would break the one line per
// input format, so such names are written with `\\` and `\n` escapes and
// the whole line is prefixed with a single backslash.
package sanitize

import (
	"errors"
	"strings"
)

// ErrBadEscape reports an escape sequence other than `\\` or `\n`.
var ErrBadEscape = errors.New("invalid escape sequence in name")

var escaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`)

// NeedsEscape reports whether name must be escaped.
func NeedsEscape(name string) bool {
	return strings.ContainsAny(name, "\\\n")
}

// EscapeName returns the escaped form of name and whether any escaping
// was applied.
func EscapeName(name string) (string, bool) {
	if !NeedsEscape(name) {
		return name, false
	}
	return escaper.Replace(name), true
}

// UnescapeName reverses EscapeName.
func UnescapeName(escaped string) (string, error) {
	if !strings.Contains(escaped, `\`) {
		return escaped, nil
	}
	var b strings.Builder
	b.Grow(len(escaped))
	for i := 0; i < len(escaped); i++ {
		c := escaped[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(escaped) {
			return "", ErrBadEscape
		}
		i++
		switch escaped[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		default:
			return "", ErrBadEscape
		}
	}
	return b.String(), nil
}

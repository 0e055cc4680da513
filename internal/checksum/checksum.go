// Package checksum formats and parses sha256sum output lines.
package checksum

import (
	"encoding/hex"
	"fmt"
	"strings"

	apperrors "sha256sum/internal/errors"
	"sha256sum/internal/sanitize"
	"sha256sum/internal/sha256"
)

// Style selects the line layout.
type Style int

const (
	// GNU is "<hex>  <name>".
	GNU Style = iota
	// BSD is "SHA256 (<name>) = <hex>".
	BSD
)

const (
	hexDigestLen = 2 * sha256.Size
	bsdPrefix    = "SHA256 ("
	bsdSeparator = ") = "
)

// Line is one parsed checksum entry.
type Line struct {
	Name   string
	Digest [sha256.Size]byte
	Style  Style
	// Binary is set when a GNU line used the '*' mode marker.
	Binary bool
}

// FormatDigest returns the lowercase hex form of digest.
func FormatDigest(digest [sha256.Size]byte) string {
	return hex.EncodeToString(digest[:])
}

// ParseDigest parses a 64 character hex digest.
func ParseDigest(hexString string) ([sha256.Size]byte, error) {
	var digest [sha256.Size]byte
	if len(hexString) != hexDigestLen {
		return digest, fmt.Errorf("digest is %d characters, want %d: %w", len(hexString), hexDigestLen, apperrors.ErrMalformed)
	}
	if _, err := hex.Decode(digest[:], []byte(hexString)); err != nil {
		return digest, fmt.Errorf("parse digest: %w: %w", err, apperrors.ErrMalformed)
	}
	return digest, nil
}

// Format renders one output line without the trailing newline.
func Format(style Style, name string, digest [sha256.Size]byte) string {
	escapedName, escaped := sanitize.EscapeName(name)
	prefix := ""
	if escaped {
		prefix = `\`
	}
	if style == BSD {
		return prefix + bsdPrefix + escapedName + bsdSeparator + FormatDigest(digest)
	}
	return prefix + FormatDigest(digest) + "  " + escapedName
}

// ParseLine parses a GNU or BSD checksum line. Errors wrap ErrMalformed.
func ParseLine(text string) (Line, error) {
	text = strings.TrimSuffix(text, "\r")
	escaped := strings.HasPrefix(text, `\`)
	if escaped {
		text = text[1:]
	}

	var line Line
	var hexPart string
	if strings.HasPrefix(text, bsdPrefix) {
		sep := strings.LastIndex(text, bsdSeparator)
		if sep < len(bsdPrefix) {
			return Line{}, fmt.Errorf("missing %q: %w", bsdSeparator, apperrors.ErrMalformed)
		}
		line.Style = BSD
		line.Name = text[len(bsdPrefix):sep]
		hexPart = text[sep+len(bsdSeparator):]
	} else {
		if len(text) < hexDigestLen+2 {
			return Line{}, fmt.Errorf("line too short: %w", apperrors.ErrMalformed)
		}
		if text[hexDigestLen] != ' ' {
			return Line{}, fmt.Errorf("missing separator after digest: %w", apperrors.ErrMalformed)
		}
		switch text[hexDigestLen+1] {
		case ' ':
		case '*':
			line.Binary = true
		default:
			return Line{}, fmt.Errorf("unknown mode marker %q: %w", text[hexDigestLen+1], apperrors.ErrMalformed)
		}
		line.Style = GNU
		hexPart = text[:hexDigestLen]
		line.Name = text[hexDigestLen+2:]
	}

	if line.Name == "" {
		return Line{}, fmt.Errorf("empty file name: %w", apperrors.ErrMalformed)
	}
	if escaped {
		name, err := sanitize.UnescapeName(line.Name)
		if err != nil {
			return Line{}, fmt.Errorf("%w: %w", err, apperrors.ErrMalformed)
		}
		line.Name = name
	}

	digest, err := ParseDigest(hexPart)
	if err != nil {
		return Line{}, err
	}
	line.Digest = digest
	return line, nil
}

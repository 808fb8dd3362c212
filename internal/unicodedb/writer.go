package unicodedb

import (
	"fmt"
	"io"
	"strings"
)

// Format selects how WriteChars renders characters.
type Format int

const (
	// FormatGlyph prints the characters themselves.
	FormatGlyph Format = iota
	// FormatCodePoint prints U+XXXX notation.
	FormatCodePoint
)

// CodePoint formats r as U+XXXX with at least four hex digits.
func CodePoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// FormatChars joins chars with single spaces.
func FormatChars(chars []rune, format Format) string {
	parts := make([]string, len(chars))
	for i, c := range chars {
		if format == FormatCodePoint {
			parts[i] = CodePoint(c)
		} else {
			parts[i] = string(c)
		}
	}
	return strings.Join(parts, " ")
}

// WriteChars writes chars as one space-joined line.
// An empty result still writes the trailing newline.
func WriteChars(w io.Writer, chars []rune, format Format) error {
	if _, err := io.WriteString(w, FormatChars(chars, format)+"\n"); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

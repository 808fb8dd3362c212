// Package unicodedb loads Unicode code point descriptions and searches them
// with regular expressions.
//
// The text format is the one used by the Unicode collation element table
// (allkeys.txt):
//
//	1F9A6 ; [*180C.0020.0002] # OTTER
//
// Only the leading hex code and the trailing comment are kept. Lines that do
// not have this shape are skipped.
package unicodedb

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Record is a single code point and its lower-cased description.
type Record struct {
	Code        uint32
	Description string
}

// Rune returns the record's code as a rune. ok is false when the code is not
// a valid Unicode scalar value (a surrogate half or above U+10FFFF).
func (r Record) Rune() (rune, bool) {
	if r.Code > utf8.MaxRune {
		return utf8.RuneError, false
	}
	c := rune(r.Code)
	if !utf8.ValidRune(c) {
		return utf8.RuneError, false
	}
	return c, true
}

// ParseLine parses one database line of the form "CODE ; FIELDS # DESCRIPTION".
// It splits on the first ';' and then on the first '#' of the remainder.
func ParseLine(line string) (Record, bool) {
	hexCode, rest, found := strings.Cut(line, ";")
	if !found {
		return Record{}, false
	}

	_, description, found := strings.Cut(rest, "#")
	if !found {
		return Record{}, false
	}

	code, err := strconv.ParseUint(strings.TrimSpace(hexCode), 16, 32)
	if err != nil {
		return Record{}, false
	}

	return Record{
		Code:        uint32(code),
		Description: normalizeDescription(description),
	}, true
}

func normalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package unicodedb

import (
	"fmt"
	"regexp"
)

// PatternError is returned by Search when the pattern is not a valid
// regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Store holds description records in file order. It is never modified after
// construction and is safe for concurrent use.
type Store struct {
	records []Record
}

// NewStore returns a store over a copy of records.
func NewStore(records []Record) *Store {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Store{records: rs}
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the stored records in file order.
func (s *Store) Records() []Record {
	rs := make([]Record, len(s.records))
	copy(rs, s.records)
	return rs
}

// CompilePattern compiles a search pattern, wrapping failures in a
// *PatternError.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// Search returns the characters whose description contains a match for
// pattern, in file order. Duplicates are kept.
//
// The pattern is matched as given against lower-cased descriptions, so
// upper-case letters in the pattern never match.
func (s *Store) Search(pattern string) ([]rune, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return s.SearchRegexp(re), nil
}

// SearchRegexp is Search with an already compiled expression.
// Records whose code is not a valid scalar value are skipped.
func (s *Store) SearchRegexp(re *regexp.Regexp) []rune {
	chars := make([]rune, 0)
	for _, rec := range s.records {
		if !re.MatchString(rec.Description) {
			continue
		}
		if c, ok := rec.Rune(); ok {
			chars = append(chars, c)
		}
	}
	return chars
}

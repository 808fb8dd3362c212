package unicodedb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// Read buffer size for database files; longer lines are still read whole
	readerBufferSize = 64 * 1024 // 64 KB
)

// LoadError reports a database that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load database %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a description database from a text file.
// Lines that cannot be parsed are skipped.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	store, err := LoadReader(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return store, nil
}

// LoadReader reads a description database from r, one record per line.
func LoadReader(r io.Reader) (*Store, error) {
	var records []Record

	br := bufio.NewReaderSize(r, readerBufferSize)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if rec, ok := ParseLine(strings.TrimRight(line, "\r\n")); ok {
				records = append(records, rec)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading database: %w", err)
		}
	}

	return &Store{records: records}, nil
}

// Open loads path as a SQLite database when its extension is .db, .sqlite or
// .sqlite3, and as a text database otherwise.
func Open(path string) (*Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path)
	default:
		return Load(path)
	}
}

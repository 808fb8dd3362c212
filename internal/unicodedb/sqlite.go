package unicodedb

import (
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const selectDescriptions = `SELECT code, description FROM descriptions ORDER BY rowid`

// LoadSQLite reads a description database from the descriptions table of an
// existing SQLite file. The file is opened read-only.
//
// Rows with a NULL column or a code outside the uint32 range are skipped.
func LoadSQLite(path string) (*Store, error) {
	// sqlite would report a missing file as a generic open failure
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to open database: %w", err)}
	}
	defer db.Close()

	rows, err := db.Query(selectDescriptions)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to query descriptions: %w", err)}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var code sql.NullInt64
		var description sql.NullString

		if err := rows.Scan(&code, &description); err != nil {
			continue
		}
		if !code.Valid || !description.Valid || code.Int64 < 0 || code.Int64 > math.MaxUint32 {
			continue
		}

		records = append(records, Record{
			Code:        uint32(code.Int64),
			Description: normalizeDescription(description.String),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("error iterating descriptions: %w", err)}
	}

	return &Store{records: records}, nil
}

// readOnlyDSN builds a file: URI for path so that '?', '#' and '%' in the
// path are escaped rather than read as URI syntax.
func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}

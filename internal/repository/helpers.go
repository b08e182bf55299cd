package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// encodeList stores a slice column as JSON text. nil and empty slices stay
// distinct ("null" vs "[]") so a load returns what was saved.
func encodeList[T any](v []T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList[T any](s, column string) ([]T, error) {
	var out []T
	if s == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", column, err)
	}
	return out, nil
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

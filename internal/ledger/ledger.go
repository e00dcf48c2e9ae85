// Package ledger reads per-session poker ledger exports (CSV) and extracts
// the session key embedded in the filename.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound marks a missing ledger source.
	ErrNotFound = errors.New("ledger not found")
	// ErrFormat marks a source that exists but fails structural validation.
	ErrFormat = errors.New("bad ledger format")
)

// keyPattern captures the session key from a ledger filename, e.g.
// ledger23_10_20.csv → "23_10_20".
var keyPattern = regexp.MustCompile(`ledger(.*?)\.csv`)

// Row is one ledger line: a raw nickname and its net result in cents.
type Row struct {
	Nickname string
	NetCents int64
}

// Parse reads the ledger CSV at path and returns its rows plus the session
// key extracted from the filename.
func Parse(path string) ([]Row, string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if !strings.HasSuffix(path, ".csv") {
		return nil, "", fmt.Errorf("%w: not a CSV file: %s", ErrFormat, path)
	}
	key, err := SessionKey(filepath.Base(path))
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(records) == 0 {
		return nil, "", fmt.Errorf("%w: empty ledger: %s", ErrFormat, path)
	}

	nickCol, netCol := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "player_nickname":
			nickCol = i
		case "net":
			netCol = i
		}
	}
	if nickCol < 0 || netCol < 0 {
		return nil, "", fmt.Errorf("%w: missing player_nickname/net columns: %s", ErrFormat, path)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		if nickCol >= len(rec) || netCol >= len(rec) {
			return nil, "", fmt.Errorf("%w: row %d too short", ErrFormat, i+2)
		}
		cents, err := strconv.ParseInt(strings.TrimSpace(rec[netCol]), 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: row %d net %q: %v", ErrFormat, i+2, rec[netCol], err)
		}
		rows = append(rows, Row{Nickname: rec[nickCol], NetCents: cents})
	}
	return rows, key, nil
}

// SessionKey extracts the session key from a ledger filename.
func SessionKey(name string) (string, error) {
	m := keyPattern.FindStringSubmatch(name)
	if m == nil {
		return "", fmt.Errorf("%w: cannot extract session key from %q", ErrFormat, name)
	}
	return m[1], nil
}

// Path returns the expected ledger path for a session key inside dir.
func Path(dir, key string) string {
	return filepath.Join(dir, "ledger"+key+".csv")
}

// Sessions lists the session keys of every ledger CSV in dir, in sorted
// filename order.
func Sessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read ledger folder: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	keys := make([]string, 0, len(names))
	for _, name := range names {
		key, err := SessionKey(name)
		if err != nil {
			continue // stray CSV that is not a ledger export
		}
		keys = append(keys, key)
	}
	return keys, nil
}

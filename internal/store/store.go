// Package store persists the player directory. The directory is always read
// and written as one document: load everything, mutate in memory, save
// everything. Two backends exist — SQLite (default) and a plain JSON file.
package store

import (
	"strings"

	"github.com/putr/putr/internal/model"
)

// Store is the durable home of the player directory.
type Store interface {
	// Load returns the full directory. A store that has never been written
	// yields an empty directory, not an error.
	Load() (model.Directory, error)
	// Save replaces the persisted directory wholesale.
	Save(model.Directory) error
	Close() error
}

// Open picks a backend by path: ".json" selects the JSON file store,
// anything else the SQLite store.
func Open(path string) (Store, error) {
	if strings.HasSuffix(path, ".json") {
		return OpenJSONFile(path), nil
	}
	return OpenSQLite(path)
}

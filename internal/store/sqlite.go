package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/putr/putr/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps one JSON document per player in a players table.
type SQLiteStore struct {
	conn *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

// Load reads every player row and validates the assembled directory.
func (s *SQLiteStore) Load() (model.Directory, error) {
	rows, err := s.conn.Query("SELECT id, data FROM players")
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	dir := model.Directory{}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		var p model.Player
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode player %q: %w", id, err)
		}
		p.EnsureCurveOrder()
		dir[id] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := dir.Validate(); err != nil {
		return nil, fmt.Errorf("invalid directory: %w", err)
	}
	return dir, nil
}

// Save replaces the stored directory in one transaction.
func (s *SQLiteStore) Save(dir model.Directory) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO players(id, data) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, id := range dir.IDs() {
		data, err := json.Marshal(dir[id])
		if err != nil {
			return fmt.Errorf("encode player %q: %w", id, err)
		}
		if _, err := stmt.Exec(id, string(data)); err != nil {
			return fmt.Errorf("insert player %q: %w", id, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

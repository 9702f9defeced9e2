//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package state persists session history in a sqlite database: the
// files opened, the last cursor position in each, and editor sessions.
// A nil Store is valid and turns every method into a no-op, which is
// how disabling persistence works.
package state

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	gott "github.com/jakelongenecker93/notpad/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	path       TEXT PRIMARY KEY,
	cursor_row INTEGER NOT NULL DEFAULT 0,
	cursor_col INTEGER NOT NULL DEFAULT 0,
	opened_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	started_at TIMESTAMP NOT NULL,
	ended_at   TIMESTAMP
);
`

type Store struct {
	db      *sql.DB
	session string
}

// Open opens or creates the state database and starts a session row.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db %s: %w", path, err)
	}
	// sqlite allows one writer; a second connection would just block
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configuring state db: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}
	s := &Store{db: db, session: uuid.NewString()}
	if _, err := db.Exec(
		"INSERT INTO sessions (id, started_at) VALUES (?, ?)",
		s.session, time.Now()); err != nil {
		db.Close()
		return nil, fmt.Errorf("recording session: %w", err)
	}
	return s, nil
}

// Close ends the session and closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.db.Exec("UPDATE sessions SET ended_at = ? WHERE id = ?",
		time.Now(), s.session)
	return s.db.Close()
}

// TouchFile records that path was opened now. The saved cursor
// position is kept.
func (s *Store) TouchFile(path string) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO files (path, cursor_row, cursor_col, opened_at)
		VALUES (?, 0, 0, ?)
		ON CONFLICT(path) DO UPDATE SET opened_at = excluded.opened_at`,
		path, time.Now())
	return err
}

// SavePosition records the cursor position for path.
func (s *Store) SavePosition(path string, cursor gott.Point) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO files (path, cursor_row, cursor_col, opened_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			cursor_row = excluded.cursor_row,
			cursor_col = excluded.cursor_col`,
		path, cursor.Row, cursor.Col, time.Now())
	return err
}

// Position returns the saved cursor position for path. Callers clamp
// it to the file, which may have shrunk since.
func (s *Store) Position(path string) (gott.Point, bool) {
	if s == nil || s.db == nil {
		return gott.Point{}, false
	}
	var p gott.Point
	err := s.db.QueryRow(
		"SELECT cursor_row, cursor_col FROM files WHERE path = ?",
		path).Scan(&p.Row, &p.Col)
	if err != nil {
		return gott.Point{}, false
	}
	return p, true
}

// Recent returns up to n paths, most recently opened first.
func (s *Store) Recent(n int) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		"SELECT path FROM files ORDER BY opened_at DESC LIMIT ?", n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

// Package capture persists frames and their parse outcomes to a sqlite
// database, so a run of the analyzer can be inspected or replayed
// later. Each Store handle belongs to one session, identified by a
// fresh uuid.
package capture

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/andreasots/irc-syntax/msg"
)

type Store struct {
	db      *sql.DB
	session string
	insert  *sql.Stmt
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS frames(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		at INTEGER NOT NULL,
		raw BLOB NOT NULL,
		outcome TEXT NOT NULL,
		command TEXT
	);
	CREATE INDEX IF NOT EXISTS frames_session ON frames(session);`)
	if err != nil {
		db.Close()
		return nil, err
	}

	insert, err := db.Prepare(
		"INSERT INTO frames(session, at, raw, outcome, command) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:      db,
		session: uuid.New().String(),
		insert:  insert,
	}, nil
}

func (s *Store) Session() string { return s.session }

// Record stores one frame with its parse outcome. m may be nil when
// perr is set.
func (s *Store) Record(raw []byte, m *msg.Message, perr error) error {
	outcome := "ok"
	var command sql.NullString

	switch {
	case errors.Is(perr, msg.ErrIncomplete):
		outcome = "incomplete"
	case perr != nil:
		outcome = "malformed"
	default:
		command = sql.NullString{String: m.Command.String(), Valid: true}
	}

	_, err := s.insert.Exec(s.session, time.Now().UnixMilli(), raw, outcome, command)
	return err
}

// Count reports the number of frames recorded under a session.
func (s *Store) Count(session string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM frames WHERE session = ?", session).Scan(&n)
	return n, err
}

// Commands reports the distinct command classifications of the
// successfully parsed frames in a session, sorted.
func (s *Store) Commands(session string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT command FROM frames WHERE session = ? AND outcome = 'ok' ORDER BY command",
		session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commands []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		commands = append(commands, c)
	}
	return commands, rows.Err()
}

func (s *Store) Close() error {
	s.insert.Close()
	return s.db.Close()
}

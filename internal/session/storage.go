package session

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"homify/internal/domain"
)

// stateKey matches the storage key the browser build of the app used.
const stateKey = "homify_auth"

// SQLiteStorage keeps the serialized session in a single row of a local
// sqlite file, the desktop analog of browser localStorage.
type SQLiteStorage struct {
	db *sqlx.DB
}

func OpenSQLite(dsn string) (*SQLiteStorage, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	schema := `
CREATE TABLE IF NOT EXISTS client_state(
  key TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Load() (domain.Session, error) {
	var payload string
	err := s.db.Get(&payload, `SELECT payload FROM client_state WHERE key=?`, stateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, nil
	}
	if err != nil {
		return domain.Session{}, err
	}
	var sess domain.Session
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		// Corrupted state reads as logged out, never as an error.
		return domain.Session{}, nil
	}
	return sess, nil
}

func (s *SQLiteStorage) Save(sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO client_state(key,payload,updated_at)
		VALUES(?,?,CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET payload=excluded.payload,updated_at=CURRENT_TIMESTAMP`,
		stateKey, string(b))
	return err
}

// MemStorage is the in-memory Storage fake used by tests.
type MemStorage struct {
	Sess domain.Session
	Err  error
}

func (m *MemStorage) Load() (domain.Session, error) { return m.Sess, m.Err }
func (m *MemStorage) Save(s domain.Session) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sess = s
	return nil
}
